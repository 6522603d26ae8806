package uploads

import (
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Store saves uploaded files (package PDFs, prescriptions, images) under a
// single directory and hands back the public URL path they are served from.
type Store struct {
	dir     string
	baseURL string
}

func NewStore(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Save writes the file with a uuid prefix so uploads never collide and the
// original name stays readable in the URL.
func (s *Store) Save(c *gin.Context, fh *multipart.FileHeader) (string, error) {
	name := uuid.NewString() + "_" + SanitizeName(fh.Filename)
	if err := c.SaveUploadedFile(fh, filepath.Join(s.dir, name)); err != nil {
		return "", err
	}
	return s.baseURL + "/" + name, nil
}

// Remove deletes a previously saved file given its public URL. Unknown or
// foreign URLs are ignored.
func (s *Store) Remove(fileURL string) error {
	if fileURL == "" || !strings.HasPrefix(fileURL, s.baseURL+"/") {
		return nil
	}
	name := path.Base(fileURL)
	err := os.Remove(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *Store) Dir() string { return s.dir }

func SanitizeName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	if name == "" || name == "." || name == ".." {
		name = "file"
	}
	return name
}
