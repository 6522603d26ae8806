package uploads

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"report.pdf", "report.pdf"},
		{"my report (final).pdf", "my_report_final_.pdf"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\evil.exe", "evil.exe"},
		{"", "file"},
		{"..", "file"},
	}
	for _, tc := range cases {
		if got := SanitizeName(tc.in); got != tc.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRemoveOnlyOwnedURLs(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir, "/uploads")
	if err != nil {
		t.Fatal(err)
	}

	name := "abc_report.pdf"
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	// foreign and empty URLs are ignored
	if err := s.Remove(""); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove("https://cdn.example.com/img.png"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
		t.Fatal("file removed by a foreign URL")
	}

	if err := s.Remove("/uploads/" + name); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
		t.Fatal("owned file still present after remove")
	}

	// removing twice is a no-op
	if err := s.Remove("/uploads/" + name); err != nil {
		t.Fatal(err)
	}
}
