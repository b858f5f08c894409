package launcher

import (
	"errors"
	"testing"

	"deskmenu/internal/models"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/bin/foo", "/bin/foo"},
		{"/bin/foo %f", "/bin/foo"},
		{"/bin/foo %F", "/bin/foo"},
		{"/bin/foo %u", "/bin/foo"},
		{"/bin/foo %U", "/bin/foo"},
		{`/bin/foo "%f"`, "/bin/foo"},
		{`"/opt/app/bin" %f`, `"/opt/app/bin"`},
		{"/bin/foo %f %U", "/bin/foo"},
		{"/bin/foo %U --flag", "/bin/foo --flag"},
		{"%U /bin/foo", "/bin/foo"},
		{`"%f" /bin/foo`, "/bin/foo"},
		{"/bin/foo --arg=%fx", "/bin/foo --arg=%fx"},
		{"/bin/foo %fx", "/bin/foo %fx"},
		{"/bin/foo %i %c", "/bin/foo %i %c"},
		{"/usr/bin/flatpak run org.foo.Bar %U", "/usr/bin/flatpak run org.foo.Bar"},
		{
			"/usr/bin/flatpak run --file-forwarding org.foo.Bar @@u %U @@",
			"/usr/bin/flatpak run --file-forwarding org.foo.Bar @@u",
		},
		{"/bin/foo  %f", "/bin/foo "},
		{"%f", ""},
	}

	for _, tt := range tests {
		if got := Sanitize(tt.input); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, expected %q", tt.input, got, tt.want)
		}
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"/bin/foo %f %U",
		`"/opt/app/bin" "%u"`,
		"/usr/bin/flatpak run org.foo.Bar @@u %U @@",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		if twice := Sanitize(once); twice != once {
			t.Errorf("Sanitize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNameFromCommand(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{"/bin/bar", "bar"},
		{"/usr/bin/flatpak run org.foo.Bar", "flatpak"},
		{`"/opt/app/bin"`, "bin"},
		{`"/opt/app/bin" --x`, `bin"`},
		{`"/opt/x" "arg"`, `x"`},
		{`"/opt/x"`, "x"},
		{"env FOO=1 /bin/foo", "env"},
		{"foo", "foo"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := NameFromCommand(tt.command); got != tt.want {
			t.Errorf("NameFromCommand(%q) = %q, expected %q", tt.command, got, tt.want)
		}
	}
}

func newEntry(keys map[string]string) *models.Entry {
	e := models.NewEntry("test.desktop")
	for k, v := range keys {
		e.Set(k, v)
	}
	return e
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		desc    string
		keys    map[string]string
		command string
		want    string
	}{
		{"declared name", map[string]string{"Name": "Foo"}, "/bin/foo", "Foo"},
		{"en_US fallback", map[string]string{"Name[en_US]": "Color"}, "/bin/foo", "Color"},
		{"name preferred over en_US", map[string]string{"Name": "Farbe", "Name[en_US]": "Color"}, "/bin/foo", "Farbe"},
		{"empty name falls back", map[string]string{"Name": "", "Name[en_US]": "Color"}, "/bin/foo", "Color"},
		{"derived", nil, "/bin/bar", "bar"},
		{"quoted name", map[string]string{"Name": `"My App"`}, "/bin/app", "My App"},
		{"padded name", map[string]string{"Name": `  Spaced  `}, "/bin/app", "Spaced"},
		{"derived flatpak", nil, "/usr/bin/flatpak run org.foo.Bar", "flatpak (flatpak)"},
		{"flatpak suffix", map[string]string{"Name": "Bar"}, "/usr/bin/flatpak run org.foo.Bar", "Bar (flatpak)"},
		{"flatpak already named", map[string]string{"Name": "Bar Flatpak"}, "/usr/bin/flatpak run org.foo.Bar", "Bar Flatpak"},
		{"no flatpak", map[string]string{"Name": "Bar"}, "/usr/bin/bar", "Bar"},
		{"nothing resolvable", nil, "", ""},
	}

	for _, tt := range tests {
		got := DisplayName(newEntry(tt.keys), tt.command)
		if got != tt.want {
			t.Errorf("%s: DisplayName() = %q, expected %q", tt.desc, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	e := newEntry(map[string]string{"Exec": "/usr/bin/flatpak run org.foo.Bar %U"})

	if err := Resolve(e); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if e.Exec() != "/usr/bin/flatpak run org.foo.Bar" {
		t.Errorf("Expected sanitized command, got %q", e.Exec())
	}
	if e.Name() != "flatpak (flatpak)" {
		t.Errorf("Expected 'flatpak (flatpak)', got %q", e.Name())
	}

	// A second pass must not stack suffixes
	if err := Resolve(e); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if e.Name() != "flatpak (flatpak)" {
		t.Errorf("Expected name unchanged on second pass, got %q", e.Name())
	}
}

func TestResolve_QuotedCommand(t *testing.T) {
	e := newEntry(map[string]string{"Exec": `"/opt/app/bin" %f`})

	if err := Resolve(e); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if e.Exec() != `"/opt/app/bin"` {
		t.Errorf("Expected quotes kept on command, got %q", e.Exec())
	}
	if e.Name() != "bin" {
		t.Errorf("Expected derived name 'bin', got %q", e.Name())
	}
}

func TestResolve_QuotedExecutableWithArgs(t *testing.T) {
	e := newEntry(map[string]string{"Exec": `"/opt/x" "arg"`})

	if err := Resolve(e); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if e.Name() != `x"` {
		t.Errorf("Expected only one quote layer stripped, got %q", e.Name())
	}
}

func TestResolve_NoName(t *testing.T) {
	e := newEntry(map[string]string{"Exec": "%U"})

	err := Resolve(e)
	if !errors.Is(err, ErrNoName) {
		t.Fatalf("Expected ErrNoName, got %v", err)
	}
	if _, ok := e.Get(models.KeyName); ok {
		t.Error("Name should stay unset when it cannot be resolved")
	}
}
