package artifact

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"warctl/pkg/logging"
)

// Stage copies the artifact at location into a fresh directory under
// tempDir (the system temp directory when empty) and returns the staged
// path plus a cleanup function. http(s) locations are fetched with a
// single GET; anything else is treated as a local file path.
//
// Staging always happens, even for local files, so the deploy upload
// reads from a stable copy that cannot change mid-request.
func Stage(ctx context.Context, location, tempDir string) (string, func(), error) {
	dir, err := os.MkdirTemp(tempDir, "warctl-stage-")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	cleanup := func() {
		if err := os.RemoveAll(dir); err != nil {
			logging.Warn("Artifact", "failed to remove staging directory %s: %v", dir, err)
		}
	}

	staged := filepath.Join(dir, stagedName(location))

	var stageErr error
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		stageErr = fetch(ctx, location, staged)
	} else {
		stageErr = copyFile(location, staged)
	}
	if stageErr != nil {
		cleanup()
		return "", nil, stageErr
	}

	logging.Debug("Artifact", "staged %s at %s", location, staged)
	return staged, cleanup, nil
}

func stagedName(location string) string {
	base := path.Base(strings.ReplaceAll(location, "\\", "/"))
	if idx := strings.IndexAny(base, "?#"); idx >= 0 {
		base = base[:idx]
	}
	if base == "" || base == "." || base == "/" {
		return "artifact.war"
	}
	return base
}

func fetch(ctx context.Context, location, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch artifact %s: %w", location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("artifact fetch %s returned HTTP %d", location, resp.StatusCode)
	}
	return writeTo(dest, resp.Body)
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open artifact %s: %w", src, err)
	}
	defer in.Close()
	return writeTo(dest, in)
}

func writeTo(dest string, r io.Reader) error {
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create staged artifact: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return fmt.Errorf("failed to write staged artifact: %w", err)
	}
	return out.Sync()
}
