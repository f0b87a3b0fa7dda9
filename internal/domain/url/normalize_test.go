package url

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/favicache/internal/domain/entity"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  "",
		},
		{
			name:  "domain gets https",
			input: "example.com",
			want:  "https://example.com",
		},
		{
			name:  "domain is trimmed",
			input: "  example.com\n",
			want:  "https://example.com",
		},
		{
			name:  "domain with path gets https",
			input: "example.com/path",
			want:  "https://example.com/path",
		},
		{
			name:  "domain with port gets https",
			input: "localhost:8080",
			want:  "https://localhost:8080",
		},
		{
			name:  "host starting with http is not a scheme",
			input: "httpbin.org",
			want:  "https://httpbin.org",
		},
		{
			name:  "http scheme unchanged",
			input: "http://example.com",
			want:  "http://example.com",
		},
		{
			name:  "https scheme unchanged",
			input: "https://example.com/a?b=c",
			want:  "https://example.com/a?b=c",
		},
		{
			name:  "uppercase scheme unchanged",
			input: "HTTP://Example.com",
			want:  "HTTP://Example.com",
		},
		{
			name:  "other scheme unchanged",
			input: "ftp://files.example.com",
			want:  "ftp://files.example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestHasScheme(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://example.com", true},
		{"svn+ssh://host", true},
		{"example.com", false},
		{"://example.com", false},
		{"1http://example.com", false},
		{"exa mple://x", false},
		{"example.com/redirect?to=https://x", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, HasScheme(tt.input))
		})
	}
}

func TestParseOrigin_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  entity.Origin
	}{
		{"bare domain", "example.com", entity.Origin{Scheme: "https", Host: "example.com"}},
		{"http kept", "http://example.com/some/page", entity.Origin{Scheme: "http", Host: "example.com"}},
		{"port kept", "http://127.0.0.1:8080/x?q=1", entity.Origin{Scheme: "http", Host: "127.0.0.1:8080"}},
		{"userinfo dropped", "https://user:pw@example.com", entity.Origin{Scheme: "https", Host: "example.com"}},
		{"subdomain", "docs.example.org", entity.Origin{Scheme: "https", Host: "docs.example.org"}},
		{"host lowercased", "Example.COM", entity.Origin{Scheme: "https", Host: "example.com"}},
		{"scheme lowercased", "HTTPS://Example.com", entity.Origin{Scheme: "https", Host: "example.com"}},
		{"https default port dropped", "https://example.com:443", entity.Origin{Scheme: "https", Host: "example.com"}},
		{"http default port dropped", "http://example.com:80/x", entity.Origin{Scheme: "http", Host: "example.com"}},
		{"non-default port kept", "https://example.com:8443", entity.Origin{Scheme: "https", Host: "example.com:8443"}},
		{"ipv6 brackets kept", "http://[::1]:8080/", entity.Origin{Scheme: "http", Host: "[::1]:8080"}},
		{"ipv6 default port dropped", "https://[::1]:443/", entity.Origin{Scheme: "https", Host: "[::1]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, origin, err := ParseOrigin(tt.input)
			require.NoError(t, err)
			require.NotNil(t, parsed)
			assert.Equal(t, tt.want, origin)
		})
	}
}

func TestParseOrigin_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"https://",
		"http://",
		"exa mple.com",
		"https://%zz",
		"ftp://files.example.com",
		"file:///etc/passwd",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			parsed, origin, err := ParseOrigin(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, entity.ErrInvalidInput))
			assert.Nil(t, parsed)
			assert.Equal(t, entity.Origin{}, origin)
		})
	}
}

func TestWellKnownIconURL(t *testing.T) {
	_, origin, err := ParseOrigin("example.com/some/deep/page")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/favicon.ico", WellKnownIconURL(origin))
	assert.Equal(t, "https://example.com/", RootDocumentURL(origin))

	for _, input := range []string{"Example.COM", "https://example.com:443", "HTTPS://EXAMPLE.com:443/x"} {
		_, origin, err := ParseOrigin(input)
		require.NoError(t, err, input)
		assert.Equal(t, "https://example.com/favicon.ico", WellKnownIconURL(origin), input)
	}
}

func TestResolveReference(t *testing.T) {
	root, err := url.Parse("https://example.com/")
	require.NoError(t, err)
	page, err := url.Parse("https://example.com/docs/page.html")
	require.NoError(t, err)

	tests := []struct {
		name   string
		base   *url.URL
		href   string
		want   string
		wantOK bool
	}{
		{"absolute path", root, "/a.png", "https://example.com/a.png", true},
		{"relative path", root, "icons/b.png", "https://example.com/icons/b.png", true},
		{"relative to page", page, "img/i.png", "https://example.com/docs/img/i.png", true},
		{"protocol relative", root, "//cdn.example.net/i.ico", "https://cdn.example.net/i.ico", true},
		{"absolute url", root, "http://other.org/x.ico", "http://other.org/x.ico", true},
		{"trimmed", root, "  /a.png ", "https://example.com/a.png", true},
		{"empty", root, "", "", false},
		{"blank", root, "   ", "", false},
		{"data uri", root, "data:image/png;base64,AAAA", "", false},
		{"javascript", root, "javascript:void(0)", "", false},
		{"unparsable", root, "http://[::1", "", false},
		{"nil base", nil, "/a.png", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveReference(tt.base, tt.href)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
