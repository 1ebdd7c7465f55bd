// Package filter evaluates expr-lang expressions against Miniflux feeds and entries.
//
// Expressions see the record fields as variables plus a set of helpers:
//
//	ParsingErrorCount > 0 and Category == "News"
//	hasTag("go") and daysSince(PublishedAt) < 7 and not Starred
//	containsi(Title, "release") or lower(Feed) startsWith "go"
//
// parseDate takes a YYYY-MM-DD string and fails the evaluation when it
// does not parse.
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/minifluxer/miniflux"
)

// Filter is a compiled filter expression
type Filter struct {
	program *vm.Program
	expr    string
}

// programs caches compiled expressions across Compile calls
var programs = newLRUCache(64)

// helpers returns the functions available to every expression
func helpers() map[string]any {
	return map[string]any{
		// Date helpers
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"parseDate": func(dateStr string) (time.Time, error) {
			return time.Parse(time.DateOnly, dateStr)
		},
		"now": time.Now,
		// String helpers, case-insensitive. contains, startsWith and endsWith
		// are expr operators, so the helpers use other names.
		"containsi": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"hasPrefix": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"hasSuffix": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}

// Compile compiles a filter expression
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	if program, ok := programs.Get(expression); ok {
		return &Filter{program: program, expr: expression}, nil
	}

	env := helpers()
	env["hasTag"] = func(string) bool { return false }

	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, newCompilationError(expression, err)
	}

	programs.Put(expression, program)
	return &Filter{program: program, expr: expression}, nil
}

// String returns the source expression
func (f *Filter) String() string {
	return f.expr
}

// MatchFeed evaluates the filter against a feed
func (f *Filter) MatchFeed(feed *miniflux.Feed) (bool, error) {
	env := helpers()
	env["ID"] = feed.ID
	env["Title"] = feed.Title
	env["FeedURL"] = feed.FeedURL
	env["SiteURL"] = feed.SiteURL
	env["Category"] = feed.CategoryTitle()
	env["ParsingErrorCount"] = feed.ParsingErrorCount
	env["ParsingErrorMsg"] = feed.ParsingErrorMsg
	env["Disabled"] = feed.Disabled
	env["Crawler"] = feed.Crawler
	env["CheckedAt"] = feed.CheckedAt
	env["hasTag"] = func(string) bool { return false }

	return f.run(env, feed.Title)
}

// MatchEntry evaluates the filter against an entry
func (f *Filter) MatchEntry(entry *miniflux.Entry) (bool, error) {
	env := helpers()
	env["ID"] = entry.ID
	env["FeedID"] = entry.FeedID
	env["Title"] = entry.Title
	env["URL"] = entry.URL
	env["Author"] = entry.Author
	env["Status"] = entry.Status
	env["Starred"] = entry.Starred
	env["ReadingTime"] = entry.ReadingTime
	env["PublishedAt"] = entry.Date
	env["CreatedAt"] = entry.CreatedAt
	env["Tags"] = entry.Tags
	env["Content"] = entry.Content
	env["Feed"] = ""
	env["Category"] = ""
	if entry.Feed != nil {
		env["Feed"] = entry.Feed.Title
		env["Category"] = entry.Feed.CategoryTitle()
	}
	env["hasTag"] = entry.HasTag

	return f.run(env, entry.Title)
}

func (f *Filter) run(env map[string]any, title string) (bool, error) {
	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{Expression: f.expr, Title: title, Reason: err.Error(), Err: err}
	}

	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expr,
			Title:      title,
			Reason:     fmt.Sprintf("expression returned %T, not bool", result),
		}
	}
	return matched, nil
}

// Feeds returns the feeds matching the filter, preserving order
func (f *Filter) Feeds(feeds miniflux.Feeds) (miniflux.Feeds, error) {
	var matched miniflux.Feeds
	for _, feed := range feeds {
		ok, err := f.MatchFeed(feed)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, feed)
		}
	}
	return matched, nil
}

// Entries returns the entries matching the filter, preserving order
func (f *Filter) Entries(entries miniflux.Entries) (miniflux.Entries, error) {
	var matched miniflux.Entries
	for _, entry := range entries {
		ok, err := f.MatchEntry(entry)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}
