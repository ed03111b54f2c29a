package desktop

import (
	"testing"

	"mxtools/internal/models"
	"mxtools/internal/system/systemtest"
)

const sampleDescriptor = `[Desktop Entry]
Name=MX Test
Comment=desc
Exec=foo
Terminal=false
Categories=MX-Utilities;
`

func TestParse_DefaultLocale(t *testing.T) {
	rec := NewParser(DefaultLocale).Parse(sampleDescriptor)

	if rec.Name != "Test" {
		t.Errorf("Expected name 'Test', got %q", rec.Name)
	}
	if rec.Comment != "desc" {
		t.Errorf("Expected comment 'desc', got %q", rec.Comment)
	}
	if rec.Exec != "foo" {
		t.Errorf("Expected exec 'foo', got %q", rec.Exec)
	}
	if rec.Terminal {
		t.Error("Expected terminal to be false")
	}
	if rec.Icon != "" {
		t.Errorf("Expected empty icon, got %q", rec.Icon)
	}
}

func TestParse_FallbackEscapesAmpersand(t *testing.T) {
	text := "Name=MX Tweak & Tune\nComment[de]=Optimieren\n"
	rec := NewParser(Locale{Language: "de", Region: "DE"}).Parse(text)

	if rec.Name != "Tweak && Tune" {
		t.Errorf("Expected 'Tweak && Tune', got %q", rec.Name)
	}
	if rec.Comment != "Optimieren" {
		t.Errorf("Expected language fallback comment, got %q", rec.Comment)
	}
}

func TestParse_LocalizedNameKeepsPrefix(t *testing.T) {
	text := "Name=MX Tools\nName[fr]=MX Outils & co\n"
	rec := NewParser(Locale{Language: "fr", Region: "FR"}).Parse(text)

	// Only the untranslated name is cleaned
	if rec.Name != "MX Outils & co" {
		t.Errorf("Expected localized name unchanged, got %q", rec.Name)
	}
}

func TestParse_RegionBeforeLanguage(t *testing.T) {
	text := "Name=Tool\nName[es]=Herramienta\nName[es_AR]=Herramienta AR\nComment=c\n"
	rec := NewParser(Locale{Language: "es", Region: "AR"}).Parse(text)

	if rec.Name != "Herramienta AR" {
		t.Errorf("Expected region-tagged name, got %q", rec.Name)
	}

	rec = NewParser(Locale{Language: "es", Region: "ES"}).Parse(text)
	if rec.Name != "Herramienta" {
		t.Errorf("Expected language-tagged name, got %q", rec.Name)
	}
}

func TestParse_BrazilianPortugueseIgnoresGenericTag(t *testing.T) {
	text := "Name=MX Tool\nName[pt]=Ferramenta PT\nComment=English\nComment[pt]=Comentário PT\n"
	rec := NewParser(Locale{Language: "pt", Region: "BR"}).Parse(text)

	if rec.Comment != "English" {
		t.Errorf("pt_BR must not use Comment[pt], got %q", rec.Comment)
	}
	if rec.Name != "Tool" {
		t.Errorf("pt_BR must not use Name[pt], got %q", rec.Name)
	}

	text += "Comment[pt_BR]=Comentário BR\n"
	rec = NewParser(Locale{Language: "pt", Region: "BR"}).Parse(text)
	if rec.Comment != "Comentário BR" {
		t.Errorf("Expected pt_BR comment, got %q", rec.Comment)
	}

	rec = NewParser(Locale{Language: "pt", Region: "PT"}).Parse(text)
	if rec.Comment != "Comentário PT" {
		t.Errorf("pt_PT should fall back to Comment[pt], got %q", rec.Comment)
	}
}

func TestParse_DefaultLocaleIgnoresTranslations(t *testing.T) {
	text := "Name[en_GB]=Colour Tool\nName=Color Tool\n"
	rec := NewParser(Locale{Language: "en", Region: "GB"}).Parse(text)

	if rec.Name != "Color Tool" {
		t.Errorf("Expected untagged name for English, got %q", rec.Name)
	}
}

func TestParse_TerminalAndIcon(t *testing.T) {
	text := "Name=X\nIcon=/usr/share/pixmaps/x.png\nTerminal=true\r\nExec=x --flag\n"
	rec := NewParser(DefaultLocale).Parse(text)

	if !rec.Terminal {
		t.Error("Expected terminal to be true")
	}
	if rec.Icon != "/usr/share/pixmaps/x.png" {
		t.Errorf("Unexpected icon %q", rec.Icon)
	}
	if rec.Exec != "x --flag" {
		t.Errorf("Unexpected exec %q", rec.Exec)
	}
}

func TestParse_FirstMatchWins(t *testing.T) {
	text := "Exec=first\n[Desktop Action new]\nExec=second\n"
	rec := NewParser(DefaultLocale).Parse(text)
	if rec.Exec != "first" {
		t.Errorf("Expected first Exec, got %q", rec.Exec)
	}
}

func TestParse_EmptyFieldsAreAbsent(t *testing.T) {
	rec := NewParser(Locale{Language: "de", Region: "DE"}).Parse("Name[de]=\nName=Fallback\nComment=\n")
	if rec.Name != "Fallback" {
		t.Errorf("Empty localized name should fall back, got %q", rec.Name)
	}
	if rec.Comment != "" {
		t.Errorf("Expected empty comment, got %q", rec.Comment)
	}
}

func TestReadRecord(t *testing.T) {
	fsys := systemtest.NewFS()
	fsys.AddFile("/apps/test.desktop", sampleDescriptor)
	p := NewParser(DefaultLocale)

	rec, ok := p.ReadRecord(fsys, "/apps/test.desktop", models.CategoryUtilities)
	if !ok {
		t.Fatal("Expected record to be read")
	}
	if rec.Path != "/apps/test.desktop" || rec.Category != models.CategoryUtilities {
		t.Errorf("Path/category not set: %+v", rec)
	}

	if _, ok := p.ReadRecord(fsys, "/apps/missing.desktop", models.CategoryLive); ok {
		t.Error("Missing file should produce no record")
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName(CleanName("MX A & B")); got != "A & B" {
		t.Errorf("Expected 'A & B', got %q", got)
	}
}
