package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	linuxAsset  = "edgequiz_Linux_x86_64.tar.gz"
	latestPath  = "/repos/abhisek/edgequiz/releases/latest"
	releasePath = "/abhisek/edgequiz/releases/download/v2.0.0/"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "edgequiz_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "edgequiz_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "edgequiz_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "edgequiz_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "edgequiz_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "edgequiz_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "edgequiz_Windows_arm64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "v1.2.0", canonical("1.2"))
	assert.Equal(t, "v1.2.3", canonical(" v1.2.3 "))
	assert.Equal(t, "", canonical("(devel)"))
	assert.Equal(t, "", canonical(""))
}

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != latestPath {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		latest    string
		available bool
	}{
		{"newer release", "v1.0.0", "v1.1.0", true},
		{"same release", "v1.1.0", "v1.1.0", false},
		{"running ahead", "v2.0.0", "v1.9.9", false},
		{"no v prefix", "1.0.0", "v1.0.1", true},
		{"prerelease is older", "v1.0.0", "v1.0.0-rc.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := releaseServer(t, tt.latest)
			res, err := NewChecker(WithBaseURL(srv.URL)).Check(context.Background(), &CheckInput{Version: tt.current})
			require.NoError(t, err)
			assert.Equal(t, tt.available, res.UpdateAvailable)
			assert.Equal(t, tt.latest, res.LatestVersion)
			assert.Equal(t, "https://example.com/"+tt.latest, res.ReleaseURL)
		})
	}
}

func TestCheckErrors(t *testing.T) {
	t.Run("dev build", func(t *testing.T) {
		_, err := NewChecker().Check(context.Background(), &CheckInput{Version: "(devel)"})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("non-semver tag", func(t *testing.T) {
		srv := releaseServer(t, "nightly")
		_, err := NewChecker(WithBaseURL(srv.URL)).Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-semver")
	})

	t.Run("http error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()
		_, err := NewChecker(WithBaseURL(srv.URL)).Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 403")
	})
}

func TestParseChecksums(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name:  "normal",
			input: "abc123  edgequiz_Darwin_all.tar.gz\ndef456  edgequiz_Linux_x86_64.tar.gz\n",
			want: map[string]string{
				"edgequiz_Darwin_all.tar.gz":   "abc123",
				"edgequiz_Linux_x86_64.tar.gz": "def456",
			},
		},
		{
			name:  "empty",
			input: "",
			want:  map[string]string{},
		},
		{
			name:  "malformed lines skipped",
			input: "abc123  file.tar.gz\nbadline\n  \nfoo  bar  baz\nghi789  other.tar.gz\n",
			want: map[string]string{
				"file.tar.gz":  "abc123",
				"other.tar.gz": "ghi789",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseChecksums([]byte(tt.input)))
		})
	}
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("hello world")
	h := sha256.Sum256(data)

	assert.NoError(t, verifyChecksum(data, hex.EncodeToString(h[:])))

	err := verifyChecksum(data, "0000000000000000000000000000000000000000000000000000000000000000")
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	content := []byte("#!/bin/sh\necho edgequiz")

	t.Run("tar.gz", func(t *testing.T) {
		got, err := extractBinary(buildTarGz(t, "dist/edgequiz", content), linuxAsset)
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("zip", func(t *testing.T) {
		got, err := extractBinary(buildZip(t, "edgequiz.exe", content), "edgequiz_Windows_x86_64.zip")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		_, err := extractBinary(buildTarGz(t, "README.md", content), linuxAsset)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplyUpdate(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "edgequiz")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))

	newData := []byte("new-binary-content")
	h := sha256.Sum256(newData)
	require.NoError(t, applyUpdate(newData, target, h[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	wrong := sha256.Sum256([]byte("something else"))
	assert.ErrorIs(t, applyUpdate(newData, target, wrong[:]), ErrChecksum)
}

func TestUpdate(t *testing.T) {
	content := []byte("new-edgequiz-binary")
	archive := buildTarGz(t, "edgequiz", content)
	sum := sha256.Sum256(archive)
	archiveHex := hex.EncodeToString(sum[:])

	serve := func(checksums string, withArchive bool) *httptest.Server {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.URL.Path == latestPath:
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
			case withArchive && r.URL.Path == releasePath+linuxAsset:
				_, _ = w.Write(archive)
			case r.URL.Path == releasePath+"checksums.txt":
				_, _ = w.Write([]byte(checksums))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		t.Cleanup(srv.Close)
		return srv
	}

	newChecker := func(srv *httptest.Server, execPath string) *Checker {
		return NewChecker(
			WithBaseURL(srv.URL),
			WithDownloadBaseURL(srv.URL),
			withPlatform("linux", "amd64"),
			withExecPath(func() (string, error) { return execPath, nil }),
		)
	}

	t.Run("happy path", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "edgequiz")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0o755))
		srv := serve(fmt.Sprintf("%s  %s\n", archiveHex, linuxAsset), true)

		var stages []string
		err := newChecker(srv, execPath).Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"},
			func(p UpdateProgress) { stages = append(stages, p.Stage) })
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, content, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("explicit target skips check", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "edgequiz")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0o755))
		srv := serve(fmt.Sprintf("%s  %s\n", archiveHex, linuxAsset), true)

		var stages []string
		err := newChecker(srv, execPath).Update(context.Background(),
			&UpdateInput{CurrentVersion: "v3.0.0", TargetVersion: "v2.0.0"},
			func(p UpdateProgress) { stages = append(stages, p.Stage) })
		require.NoError(t, err)
		assert.Equal(t, "download", stages[0])
	})

	t.Run("dev build", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, nil)
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		srv := releaseServer(t, "v1.0.0")
		err := NewChecker(WithBaseURL(srv.URL)).Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, nil)
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		srv := serve(fmt.Sprintf("%064d  %s\n", 0, linuxAsset), true)
		err := newChecker(srv, "/nonexistent").Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, nil)
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		srv := serve("", false)
		err := newChecker(srv, "/nonexistent").Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// buildTarGz creates a tar.gz archive containing a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     name,
		Size:     int64(len(content)),
		Mode:     0o755,
		Typeflag: tar.TypeReg,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func buildZip(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	require.NoError(t, err)
	_, err = w.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
