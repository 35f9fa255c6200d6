// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/imgurl/imgurl/internal/config"
	"github.com/imgurl/imgurl/internal/issue"
	"github.com/imgurl/imgurl/pkg/imgproxy"
	"github.com/imgurl/imgurl/pkg/types"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// signingFlags override the configured server and secrets for one invocation.
type signingFlags struct {
	baseURL       string
	key           string
	salt          string
	signatureSize int
}

func (f *signingFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.baseURL, "base-url", "", "imgproxy server URL (overrides base_url)")
	fs.StringVar(&f.baseURL, "base", "", "alias of --base-url")
	fs.StringVar(&f.key, "key", "", "hex-encoded signing key (overrides IMGPROXY_KEY)")
	fs.StringVar(&f.salt, "salt", "", "hex-encoded signing salt (overrides IMGPROXY_SALT)")
	fs.IntVar(&f.signatureSize, "signature-size", 0, "number of signature bytes to keep, 1-32 (overrides IMGPROXY_SIGNATURE_SIZE)")
}

// apply copies the flags the user set onto cfg.
func (f *signingFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("base-url") || fs.Changed("base") {
		cfg.BaseURL = f.baseURL
	}
	if fs.Changed("key") {
		cfg.Key = types.HexSecret(f.key)
	}
	if fs.Changed("salt") {
		cfg.Salt = types.HexSecret(f.salt)
	}
	if fs.Changed("signature-size") {
		cfg.SignatureSize = f.signatureSize
	}
}

// builder validates cfg after flag overrides and returns the URL builder.
// An insecure builder is reported with a warning.
func (s *session) builder() (*imgproxy.Builder, error) {
	if err := s.cfg.Validate(); err != nil {
		s.renderIssue(err)
		return nil, usageError(issue.NewErrorContext().
			WithOperation("apply command line flags").
			WithSuggestion("Run 'imgurl config show' to see the effective configuration").
			Wrap(err).
			Build())
	}

	b, err := s.cfg.Builder()
	if err != nil {
		s.renderIssue(err)
		return nil, failureError(issue.WrapWithOperation(err, "create URL builder"))
	}

	if !b.IsSecure() {
		s.logger.Warn("key or salt not configured, generating insecure URLs")
		if s.verbose {
			s.renderIssueEntry(issue.Get(issue.SecretsNotConfiguredId))
		}
	}
	s.logger.Debug("builder ready", "base_url", b.BaseURL(), "secure", b.IsSecure(), "signature_size", int(b.SignatureSize()))
	return b, nil
}
