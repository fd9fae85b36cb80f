// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	UnitHaltedId Id = iota + 1
	UnitNotFoundId
	InstallFailedId
	AnchorNotFoundId
	ConfigLoadFailedId
	InstallerNotConfiguredId
)

type MarkdownMsg string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

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

	unitHaltedIssue = &Issue{
		id: UnitHaltedId,
		mdMsg: `
# Guarded unit referenced outside its group!

A unit registered under a lazy group was loaded through the plain path after
the group exited. Its name is locked so that plain loads fail everywhere,
not just in environments where the dependencies happen to be missing.

## Things you can try:
- Keep the handle returned inside the group and access members through it
- Move the plain load inside the group's scope
- If the unit should not be lazy, drop it from the group`,
	}

	unitNotFoundIssue = &Issue{
		id: UnitNotFoundId,
		mdMsg: `
# Unit not found!

No provider is registered for the requested unit name.

## Things you can try:
- Check for typos in the unit name
- Make sure the providing package registered itself before the load
- List known packages:
~~~
$ lazyunit site list
~~~`,
	}

	installFailedIssue = &Issue{
		id: InstallFailedId,
		mdMsg: `
# Dependency installation failed!

The external installer reported an error. The group's dependencies are not
guaranteed to be present, so the triggering access failed rather than
continuing with a half-installed environment.

## Things you can try:
- Re-run with verbose mode to see the installer output:
~~~
$ lazyunit --verbose install <address>
~~~
- Check network access and the requirements file contents
- Verify the configured installer command:
~~~
$ lazyunit config show
~~~`,
	}

	anchorNotFoundIssue = &Issue{
		id: AnchorNotFoundId,
		mdMsg: `
# Anchor package not found!

A dependency address of the form ` + "`package:path`" + ` names an anchor
package that is not present in any configured site path.

## Things you can try:
- List the packages visible to lazyunit:
~~~
$ lazyunit site list
~~~
- Add the package's location to site_paths in your config.cue
- Use a bare file path instead of an anchored address`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the lazyunit configuration file.

## Configuration file locations:
- Linux: ~/.config/lazyunit/config.cue
- macOS: ~/Library/Application Support/lazyunit/config.cue
- Windows: %APPDATA%\lazyunit\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ lazyunit config init
~~~
- Check the configuration syntax
- Remove the config file to use defaults

## Example configuration:
~~~cue
installer_command: "python3 -m pip"
site_paths: [
    "/usr/lib/python3/dist-packages"
]

ui: {
  color_scheme: "auto"
  verbose: false
}
~~~`,
	}

	installerNotConfiguredIssue = &Issue{
		id: InstallerNotConfiguredId,
		mdMsg: `
# No installer configured!

A group declared dependencies but no installer command is available.

## Things you can try:
- Set installer_command in your config.cue:
~~~cue
installer_command: "python3 -m pip"
~~~
- Or pass an adapter explicitly with lazy.WithInstaller`,
	}

	issues = map[Id]*Issue{
		unitHaltedIssue.Id():             unitHaltedIssue,
		unitNotFoundIssue.Id():           unitNotFoundIssue,
		installFailedIssue.Id():          installFailedIssue,
		anchorNotFoundIssue.Id():         anchorNotFoundIssue,
		configLoadFailedIssue.Id():       configLoadFailedIssue,
		installerNotConfiguredIssue.Id(): installerNotConfiguredIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}

// Ids returns all issue IDs, sorted.
func Ids() []Id {
	ids := maps.Keys(issues)
	slices.Sort(ids)
	return ids
}
