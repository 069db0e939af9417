package audiochat

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// MaxAudioBytes caps the size of a downloaded clip.
const MaxAudioBytes = 25 << 20

var audioFormats = map[string]string{
	".mp3": "mp3",
	".wav": "wav",
}

// audioSource downloads a remote clip once and keeps it base64 encoded.
type audioSource struct {
	url    string
	format string
	pl     runtime.Pipeline
	limit  int64

	encoded string
}

func newAudioSource(rawURL string, opts *policy.ClientOptions) (*audioSource, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid audio url %q", rawURL)
	}
	format, ok := audioFormats[strings.ToLower(path.Ext(u.Path))]
	if !ok {
		return nil, fmt.Errorf("unsupported audio format %q (want .mp3 or .wav)", path.Ext(u.Path))
	}
	return &audioSource{
		url:    u.String(),
		format: format,
		pl:     runtime.NewPipeline(moduleName, moduleVersion, runtime.PipelineOptions{}, opts),
		limit:  MaxAudioBytes,
	}, nil
}

// load returns the encoded clip, fetching it on first use. A failed fetch is retried on the next call.
func (a *audioSource) load(ctx context.Context) (string, error) {
	if a.encoded != "" {
		return a.encoded, nil
	}

	req, err := runtime.NewRequest(ctx, http.MethodGet, a.url)
	if err != nil {
		return "", fmt.Errorf("fetch audio: %w", err)
	}
	runtime.SkipBodyDownload(req)
	resp, err := a.pl.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch audio: %w", err)
	}
	defer resp.Body.Close()
	if !runtime.HasStatusCode(resp, http.StatusOK) {
		return "", fmt.Errorf("fetch audio: %w", runtime.NewResponseError(resp))
	}
	if resp.ContentLength > a.limit {
		return "", fmt.Errorf("fetch audio: clip is %d bytes, limit %d", resp.ContentLength, a.limit)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, a.limit+1))
	if err != nil {
		return "", fmt.Errorf("fetch audio: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("fetch audio: empty clip")
	}
	if int64(len(data)) > a.limit {
		return "", fmt.Errorf("fetch audio: clip exceeds limit %d", a.limit)
	}

	a.encoded = base64.StdEncoding.EncodeToString(data)
	return a.encoded, nil
}
