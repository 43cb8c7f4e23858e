package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Fetcher streams remote resources to local files.
type Fetcher struct {
	// Client is the HTTP client to use. Nil means http.DefaultClient.
	Client *http.Client
	// Quiet disables progress bars.
	Quiet bool
	// Out receives progress-bar rendering. Nil means os.Stdout.
	Out io.Writer
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return http.DefaultClient
}

func (f *Fetcher) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

// Fetch downloads url to dest. On failure the partial file is removed
// best-effort and the error returned; the caller decides whether it is
// fatal.
func (f *Fetcher) Fetch(ctx context.Context, url string, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", url, err)
	}

	resp, err := f.client().Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("get %s: server returned %s", url, resp.Status)
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}

	var body io.Reader = resp.Body
	var progress *mpb.Progress
	var bar *mpb.Bar
	if !f.Quiet && resp.ContentLength > 0 {
		progress = mpb.New(mpb.WithOutput(f.out()), mpb.WithWidth(50))
		bar = progress.New(resp.ContentLength, barStyle(), barOptions(filepath.Base(dest))...)
		body = bar.ProxyReader(resp.Body)
	}

	_, err = io.Copy(out, body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if progress != nil {
		if err != nil {
			bar.Abort(true)
		} else {
			// Finalize even when the server sent fewer bytes than advertised.
			bar.SetTotal(-1, true)
		}
		progress.Wait()
	}
	if err != nil {
		os.Remove(dest)
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}

func barStyle() mpb.BarStyleComposer {
	return mpb.BarStyle().Lbound("[").Filler("=").Tip(">").Padding("-").Rbound("]")
}

func barOptions(fileName string) []mpb.BarOption {
	return []mpb.BarOption{
		mpb.BarRemoveOnComplete(),
		mpb.PrependDecorators(
			decor.Name(fmt.Sprintf("  %s ", fileName)),
			decor.CountersKibiByte("% .1f / % .1f"),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WC{W: 5}),
		),
	}
}
