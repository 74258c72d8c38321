// Copyright (c) 2026 BAR HIK. All rights reserved.

// Package sanitize scrubs CMS-supplied HTML before it is embedded verbatim
// in a page. Content authors are only semi-trusted: anyone with CMS write
// access can put markup in a post body, so active content must not survive
// the trip to the browser. The policy is a parser-based allowlist
// (bluemonday), not a regex denylist — obfuscated or nested markup that
// tricks pattern matching is handled by the HTML tokenizer.
package sanitize

import "github.com/microcosm-cc/bluemonday"

// blockedContainers are elements whose entire content is dropped along
// with the element itself. Stripping just the tags would leak script
// bodies and form internals into visible text.
var blockedContainers = []string{"script", "style", "iframe", "object", "embed", "form"}

var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()

	// WordPress block markup relies on classes for alignment and figures.
	p.AllowAttrs("class").Globally()
	p.AllowElements("figure", "figcaption", "span")
	p.AllowAttrs("width", "height", "loading").OnElements("img")

	p.SkipElementsContent(blockedContainers...)

	return p
}

// Fragment returns html with disallowed elements (and the full content of
// blocked containers) removed and every inline event handler stripped.
// The result is a fixed point: Fragment(Fragment(x)) == Fragment(x).
func Fragment(html string) string {
	if html == "" {
		return ""
	}
	return policy.Sanitize(html)
}
