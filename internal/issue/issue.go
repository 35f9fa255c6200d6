// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"

	"github.com/imgurl/imgurl/pkg/imgproxy"
	"github.com/imgurl/imgurl/pkg/types"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	InvalidSecretId Id = iota + 1
	SecretsNotConfiguredId
	UnknownOptionCodeId
	InvalidOptionId
	InvalidGravityId
	InvalidModeId
	InvalidSourceEncodingId
	InvalidSignatureSizeId
	MissingSourceId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n## See also:\n"
		for _, link := range i.docLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
		for _, link := range i.extLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

const (
	signingDocs HttpLink = "https://docs.imgproxy.net/usage/signing_url"
	optionsDocs HttpLink = "https://docs.imgproxy.net/usage/processing"
	configDocs  HttpLink = "https://docs.imgproxy.net/configuration/options"
)

var (
	render = glamour.Render

	invalidSecretIssue = &Issue{
		id: InvalidSecretId,
		mdMsg: `
# Invalid signing secret!

The key and the salt must be hex-encoded, exactly as passed to imgproxy in
IMGPROXY_KEY and IMGPROXY_SALT.

## Things you can try:
- Generate a new secret:
~~~
$ xxd -g 2 -l 64 -p /dev/random | tr -d '\n'
~~~

- Check that the value has an even number of characters
- Remove quotes or whitespace copied along with the value`,
		docLinks: []HttpLink{signingDocs},
	}

	secretsNotConfiguredIssue = &Issue{
		id: SecretsNotConfiguredId,
		mdMsg: `
# Generating insecure URLs

No key or no salt is configured, so URLs use the "insecure" signature.
imgproxy only accepts those when it runs without IMGPROXY_KEY and IMGPROXY_SALT.

## Things you can try:
- Set both secrets in the environment:
~~~
$ export IMGPROXY_KEY=...
$ export IMGPROXY_SALT=...
~~~

- Or pass them on the command line:
~~~
$ imgurl generate --key ... --salt ... http://example.com/image.jpg
~~~`,
		docLinks: []HttpLink{signingDocs},
	}

	unknownOptionCodeIssue = &Issue{
		id: UnknownOptionCodeId,
		mdMsg: `
# Unknown processing option!

Options are given as code:arg1:arg2, e.g. q:80 or g:fp:0.5:0.5.
The full option name may be used instead of the code, e.g. quality:80.

## Things you can try:
- List the supported options:
~~~
$ imgurl options
~~~`,
		docLinks: []HttpLink{optionsDocs},
	}

	invalidOptionIssue = &Issue{
		id: InvalidOptionId,
		mdMsg: `
# Invalid option value!

One of the processing options has an argument outside its allowed range.

## Things you can try:
- Check the rule for the option:
~~~
$ imgurl options
~~~

- Remember that arguments are separated by ':' and must not contain '/'`,
		docLinks: []HttpLink{optionsDocs},
	}

	invalidGravityIssue = &Issue{
		id: InvalidGravityId,
		mdMsg: `
# Invalid gravity!

Gravity is a type optionally followed by two coordinates.

## Valid forms:
- Compass: no, so, ea, we, noea, nowe, soea, sowe, ce with pixel offsets
- Smart: sm, without coordinates
- Focus point: fp:x:y with x and y between 0 and 1`,
		docLinks: []HttpLink{optionsDocs},
	}

	invalidModeIssue = &Issue{
		id: InvalidModeId,
		mdMsg: `
# Invalid URL mode!

The mode must be one of:
- legacy: /resize/width/height/gravity/enlarge/source
- advanced: /option/option/.../source`,
		docLinks: []HttpLink{optionsDocs},
	}

	invalidSourceEncodingIssue = &Issue{
		id: InvalidSourceEncodingId,
		mdMsg: `
# Invalid source encoding!

The source URL is written either base64 encoded (encoded) or as-is behind
/plain/ (plain).`,
		docLinks: []HttpLink{optionsDocs},
	}

	invalidSignatureSizeIssue = &Issue{
		id: InvalidSignatureSizeId,
		mdMsg: `
# Invalid signature size!

The signature is an HMAC-SHA256 digest truncated to the configured number of
bytes. Valid sizes are 1 to 32; 0 keeps the full digest.

## Things you can try:
- Use the same value as IMGPROXY_SIGNATURE_SIZE on the server`,
		docLinks: []HttpLink{signingDocs, configDocs},
	}

	missingSourceIssue = &Issue{
		id: MissingSourceId,
		mdMsg: `
# No source given!

Pass the source image as the first argument:
~~~
$ imgurl generate http://example.com/image.jpg
$ imgurl generate local:///images/photo.png
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

There was an error loading your imgurl configuration file.

## Config file location:
- Linux: ~/.config/imgurl/config.cue
- macOS: ~/Library/Application Support/imgurl/config.cue
- Windows: %APPDATA%\imgurl\config.cue

## Things you can try:
- Check the CUE syntax in your config file
- Print the effective configuration:
~~~
$ imgurl config show
~~~

- Reset to defaults by removing the config file`,
		docLinks: []HttpLink{configDocs},
	}

	issues = map[Id]*Issue{
		invalidSecretIssue.Id():         invalidSecretIssue,
		secretsNotConfiguredIssue.Id():  secretsNotConfiguredIssue,
		unknownOptionCodeIssue.Id():     unknownOptionCodeIssue,
		invalidOptionIssue.Id():         invalidOptionIssue,
		invalidGravityIssue.Id():        invalidGravityIssue,
		invalidModeIssue.Id():           invalidModeIssue,
		invalidSourceEncodingIssue.Id(): invalidSourceEncodingIssue,
		invalidSignatureSizeIssue.Id():  invalidSignatureSizeIssue,
		missingSourceIssue.Id():         missingSourceIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
	}

	// sentinels maps error sentinels to issues, most specific first.
	sentinels = []struct {
		err error
		id  Id
	}{
		{types.ErrInvalidHexSecret, InvalidSecretId},
		{imgproxy.ErrInvalidCode, UnknownOptionCodeId},
		{imgproxy.ErrInvalidGravityType, InvalidGravityId},
		{imgproxy.ErrInvalidGravity, InvalidGravityId},
		{imgproxy.ErrInvalidMode, InvalidModeId},
		{imgproxy.ErrInvalidSourceEncoding, InvalidSourceEncodingId},
		{imgproxy.ErrInvalidSignatureSize, InvalidSignatureSizeId},
		{imgproxy.ErrInvalidOption, InvalidOptionId},
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}

// ForError returns the issue explaining err, or nil when none applies.
func ForError(err error) *Issue {
	if err == nil {
		return nil
	}
	for _, s := range sentinels {
		if errors.Is(err, s.err) {
			return issues[s.id]
		}
	}
	return nil
}
