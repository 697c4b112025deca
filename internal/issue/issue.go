// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	PomNotFoundId Id = iota + 1
	PomParseErrorId
	ParentWriteFailedId
)

type MarkdownMsg string

// Issue pairs an identifier with a rendered help text shown in verbose error
// output.
type Issue struct {
	id    Id          // ID used to lookup the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	pomNotFoundIssue = &Issue{
		id: PomNotFoundId,
		mdMsg: `
# No pom found!

There is no project descriptor at the given path.

## Things you can try:
- Create one by supplying coordinates:
~~~
$ pomkit id com.example:myapp:1.0.0
~~~

- Or point at an existing descriptor:
~~~
$ pomkit id -f path/to/pom.xml
~~~`,
	}

	pomParseErrorIssue = &Issue{
		id: PomParseErrorId,
		mdMsg: `
# Failed to parse pom!

The descriptor exists but is not valid XML.

## Common issues:
- Unclosed or mismatched elements
- Stray characters before the XML declaration

## Things you can try:
- Check the error message above for the offending input
- Run with verbose mode for the full error chain:
~~~
$ pomkit --verbose id
~~~`,
	}

	parentWriteFailedIssue = &Issue{
		id: ParentWriteFailedId,
		mdMsg: `
# Failed to update the parent pom!

The parent descriptor could not be read or written, so the module was not
registered. Your own pom was left untouched.

## Things you can try:
- Check permissions on the parent pom and its directory
- Verify the parent's XML is valid
- Re-run after fixing; module registration is idempotent`,
	}

	issues = map[Id]*Issue{
		pomNotFoundIssue.Id():       pomNotFoundIssue,
		pomParseErrorIssue.Id():     pomParseErrorIssue,
		parentWriteFailedIssue.Id(): parentWriteFailedIssue,
	}
)

func Values() []*Issue {
	vals := maps.Values(issues)
	slices.SortFunc(vals, func(a, b *Issue) int { return int(a.Id()) - int(b.Id()) })
	return vals
}

func Get(id Id) *Issue {
	return issues[id]
}
