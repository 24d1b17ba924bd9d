package resource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T, files ...string) *Resolver {
	t.Helper()

	fs := memfs.New()
	for _, name := range files {
		require.NoError(t, util.WriteFile(fs, name, []byte("data"), 0644))
	}

	return New(fs)
}

func TestResolveContentTypes(t *testing.T) {
	cases := map[string]string{
		"index.html":     "text/html",
		"photo.jpg":      "image/jpeg",
		"photo.jpeg":     "image/jpeg",
		"img/logo.png":   "image/png",
		"anim.gif":       "image/gif",
		"favicon.ico":    "image/x-icon",
		"notes.txt":      DefaultContentType,
		"upper.PNG":      DefaultContentType,
		"archive.tar.gz": DefaultContentType,
	}

	files := make([]string, 0, len(cases))
	for name := range cases {
		files = append(files, name)
	}

	r := newResolver(t, files...)

	for name, contentType := range cases {
		t.Run(name, func(t *testing.T) {
			res := r.Resolve(name, true)

			assert.True(t, res.IsFound())
			assert.Equal(t, name, res.Path())
			assert.Equal(t, contentType, res.ContentType())
			assert.Equal(t, contentType != "text/html", res.Binary())
		})
	}
}

func TestResolveNotFound(t *testing.T) {
	r := newResolver(t, "index.html", "dir/page.html")

	cases := map[string]struct {
		name string
		ok   bool
	}{
		"missing":      {"missing.html", true},
		"no request":   {"", false},
		"empty path":   {"", true},
		"directory":    {"dir", true},
		"traversal":    {"../index.html", true},
		"inner parent": {"dir/../index.html", true},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			res := r.Resolve(c.name, c.ok)

			assert.False(t, res.IsFound())
			assert.Equal(t, NotFound, res)
		})
	}
}

func TestContentType(t *testing.T) {
	contentType, ok := ContentType("a.html")
	assert.True(t, ok)
	assert.Equal(t, "text/html", contentType)

	contentType, ok = ContentType("a.htm")
	assert.False(t, ok)
	assert.Equal(t, "application/octet-stream", contentType)
}

// корень на диске, как при запуске сервера
func newBoundResolver(t *testing.T) (*Resolver, string) {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "a.png"), []byte("png"), 0644))

	return New(osfs.New(root, osfs.WithBoundOS())), root
}

func TestResolveBoundOSInsideRoot(t *testing.T) {
	r, _ := newBoundResolver(t)

	res := r.Resolve("sub/a.png", true)

	assert.True(t, res.IsFound())
	assert.Equal(t, "image/png", res.ContentType())
}

func TestResolveBoundOSOutsideRoot(t *testing.T) {
	r, root := newBoundResolver(t)

	// файл вне корневого каталога, на который ведут ссылки из корня
	outside := filepath.Join(t.TempDir(), "secret.png")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0644))

	rel, err := filepath.Rel(root, outside)
	require.NoError(t, err)

	require.NoError(t, os.Symlink(outside, filepath.Join(root, "abs.png")))
	require.NoError(t, os.Symlink(rel, filepath.Join(root, "rel.png")))

	cases := map[string]string{
		"absolute path":    "/etc/passwd",
		"absolute outside": outside,
		"absolute symlink": "abs.png",
		"relative symlink": "rel.png",
		"parent of subdir": "sub/../../secret.png",
	}

	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			res := r.Resolve(path, true)

			assert.False(t, res.IsFound())
			assert.Equal(t, NotFound, res)
		})
	}
}
