package distro

import (
	"os"
	"path/filepath"
	"testing"
)

func writeOSRelease(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "os-release")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write os-release fixture: %v", err)
	}
	return path
}

func TestDetectFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Family
	}{
		{
			name: "ubuntu",
			content: `NAME="Ubuntu"
ID=ubuntu
ID_LIKE=debian
VERSION_ID="24.04"`,
			want: Ubuntu,
		},
		{
			name: "debian",
			content: `ID=debian
VERSION_ID="12"`,
			want: Ubuntu,
		},
		{
			name: "fedora",
			content: `NAME="Fedora Linux"
ID=fedora
VERSION_ID=40`,
			want: Fedora,
		},
		{
			name: "centos stream",
			content: `ID="centos"
ID_LIKE="rhel fedora"`,
			want: Fedora,
		},
		{
			name: "rocky via id_like",
			content: `ID=rocky
ID_LIKE="rhel centos fedora"`,
			want: Fedora,
		},
		{
			name: "opensuse leap",
			content: `ID="opensuse-leap"
ID_LIKE="suse opensuse"`,
			want: Suse,
		},
		{
			name: "sles",
			content: `ID="sles"
ID_LIKE="suse"`,
			want: Suse,
		},
		{
			name: "mint falls back to id_like",
			content: `ID=linuxmint
ID_LIKE="ubuntu debian"`,
			want: Ubuntu,
		},
		{
			name: "unknown distro",
			content: `ID=arch
ID_LIKE=""`,
			want: Unsupported,
		},
		{
			name:    "empty file",
			content: "",
			want:    Unsupported,
		},
		{
			name: "comments and quotes handled",
			content: `# os-release
ID='ubuntu'`,
			want: Ubuntu,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeOSRelease(t, tt.content)
			got, err := DetectFile(path)
			if err != nil {
				t.Fatalf("DetectFile failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestDetectFileMissing(t *testing.T) {
	_, err := DetectFile(filepath.Join(t.TempDir(), "nonexistent"))
	if err == nil {
		t.Error("expected error for missing os-release file")
	}
}

func TestFamilyString(t *testing.T) {
	tests := []struct {
		family Family
		want   string
	}{
		{Ubuntu, "ubuntu"},
		{Fedora, "fedora"},
		{Suse, "suse"},
		{Unsupported, "unsupported"},
		{Family(99), "unsupported"},
	}

	for _, tt := range tests {
		if got := tt.family.String(); got != tt.want {
			t.Errorf("Family(%d).String() = %s, want %s", tt.family, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Family
	}{
		{"ubuntu", Ubuntu},
		{"Debian", Ubuntu},
		{"fedora", Fedora},
		{"CentOS", Fedora},
		{"suse", Suse},
		{"opensuse", Suse},
		{" sles ", Suse},
		{"windows", Unsupported},
		{"", Unsupported},
	}

	for _, tt := range tests {
		if got := Parse(tt.input); got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestSupported(t *testing.T) {
	for _, f := range []Family{Ubuntu, Fedora, Suse} {
		if !f.Supported() {
			t.Errorf("%s should be supported", f)
		}
	}
	if Unsupported.Supported() {
		t.Error("Unsupported should not be supported")
	}
}
