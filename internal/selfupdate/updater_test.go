package selfupdate

import (
	"archive/tar"
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

// packTarGz builds a one-file tar.gz like a release archive.
func packTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

// fakeRelease serves the GitHub endpoints Update touches: the latest
// release lookup and the v2.0.0 asset downloads.
func fakeRelease(t *testing.T, asset string, archive, checksums []byte) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/mentorlabs/mentor/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
	})
	mux.HandleFunc("/mentorlabs/mentor/releases/download/v2.0.0/"+asset, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(archive)
	})
	mux.HandleFunc("/mentorlabs/mentor/releases/download/v2.0.0/checksums.txt", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(checksums)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
	}{
		{"darwin", "amd64", "mentor_Darwin_all.tar.gz"},
		{"darwin", "arm64", "mentor_Darwin_all.tar.gz"},
		{"linux", "amd64", "mentor_Linux_x86_64.tar.gz"},
		{"linux", "arm64", "mentor_Linux_arm64.tar.gz"},
		{"linux", "386", "mentor_Linux_i386.tar.gz"},
		{"windows", "amd64", "mentor_Windows_x86_64.zip"},
		{"windows", "arm64", "mentor_Windows_arm64.zip"},
	}
	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		_, err := assetNameFor("freebsd", "amd64")
		assert.Error(t, err)
		_, err = assetNameFor("linux", "mips")
		assert.Error(t, err)
	})
}

func TestParseChecksums(t *testing.T) {
	manifest := "abc123  mentor_Darwin_all.tar.gz\n" +
		"badline\n" +
		"  \n" +
		"foo  bar  baz\n" +
		"def456  mentor_Linux_x86_64.tar.gz\n"

	sums := parseChecksums([]byte(manifest))

	assert.Equal(t, map[string]string{
		"mentor_Darwin_all.tar.gz":   "abc123",
		"mentor_Linux_x86_64.tar.gz": "def456",
	}, sums, "well-formed pairs kept, junk lines skipped")

	assert.Empty(t, parseChecksums(nil))
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("mentor release bytes")
	sum := sha256.Sum256(data)

	assert.NoError(t, verifyChecksum(data, hex.EncodeToString(sum[:])))

	err := verifyChecksum(data, "0000000000000000000000000000000000000000000000000000000000000000")
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	binary := []byte("#!/bin/sh\necho mentor")

	got, err := extractBinary(packTarGz(t, "mentor", binary), "mentor_Darwin_all.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, binary, got)

	_, err = extractBinary(packTarGz(t, "not-the-binary", binary), "mentor_Darwin_all.tar.gz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyUpdatePreservesMode(t *testing.T) {
	target := filepath.Join(t.TempDir(), "mentor")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	replacement := []byte("new-binary-content")
	sum := sha256.Sum256(replacement)
	require.NoError(t, applyUpdate(replacement, target, sum[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestCheck(t *testing.T) {
	t.Run("newer release available", func(t *testing.T) {
		server := fakeRelease(t, "unused", nil, nil)

		result, err := NewChecker(WithBaseURL(server.URL)).
			Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "v2.0.0", result.LatestVersion)
	})

	t.Run("tag without v prefix still compares", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"1.2.0","html_url":"https://example.com/1.2.0"}`))
		}))
		defer server.Close()

		result, err := NewChecker(WithBaseURL(server.URL)).
			Check(context.Background(), &CheckInput{Version: "1.1.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
	})
}

func TestUpdate(t *testing.T) {
	binary := []byte("new-mentor-binary")
	asset, err := assetName()
	require.NoError(t, err)
	archive := packTarGz(t, "mentor", binary)
	archiveSum := sha256.Sum256(archive)
	goodChecksums := []byte(fmt.Sprintf("%s  %s\n", hex.EncodeToString(archiveSum[:]), asset))

	t.Run("full update", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "mentor")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := fakeRelease(t, asset, archive, goodChecksums)
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		installed, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binary, installed)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build refuses", func(t *testing.T) {
		err := NewChecker().Update(context.Background(),
			&UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`))
		}))
		defer server.Close()

		err := NewChecker(WithBaseURL(server.URL)).Update(context.Background(),
			&UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch aborts", func(t *testing.T) {
		badChecksums := []byte(fmt.Sprintf("%064d  %s\n", 0, asset))
		server := fakeRelease(t, asset, archive, badChecksums)

		err := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		).Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("missing asset", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/mentorlabs/mentor/releases/latest" {
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		err := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		).Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}
