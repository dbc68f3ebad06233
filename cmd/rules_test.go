package cmd

import (
	"strings"
	"testing"

	"github.com/eykd/dircompat-go/internal/domain"
)

func TestRulesCmd_AllFilesystems(t *testing.T) {
	stdout, stderr, code := execute(&mockChecker{}, "rules")

	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	for _, want := range []string{
		"CHECK", "FILESYSTEMS",
		"case-collision", "ntfs, exfat",
		"names are at most 143 bytes", "encrypted-ext4",
		"full paths are at most 32760 symbols",
		"posix-symbols", "ext4, encrypted-ext4",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestRulesCmd_Subset(t *testing.T) {
	stdout, _, code := execute(&mockChecker{}, "rules", "-f", "ext4")

	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if strings.Contains(stdout, "reserved-name") {
		t.Errorf("ext4 rules include reserved names:\n%s", stdout)
	}
	if !strings.Contains(stdout, "names are at most 255 bytes") {
		t.Errorf("output missing ext4 length rule:\n%s", stdout)
	}
}

func TestRulesCmd_UnsupportedFilesystem(t *testing.T) {
	_, stderr, code := execute(&mockChecker{}, "rules", "-f", "hfs")
	if code != 1 || !strings.Contains(stderr, "unsupported filesystem") {
		t.Errorf("code = %d, stderr = %q", code, stderr)
	}
}

func TestRenderRules_NumbersRowsInOrder(t *testing.T) {
	out := renderRules(domain.Resolve([]domain.Filesystem{domain.Ext4}))

	first := strings.Index(out, "posix-symbols")
	second := strings.Index(out, "filename-length")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("rows out of order:\n%s", out)
	}
	if !strings.Contains(out, "| 1 ") || !strings.Contains(out, "| 2 ") || strings.Contains(out, "| 3 ") {
		t.Errorf("row numbers wrong:\n%s", out)
	}
}
