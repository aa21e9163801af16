package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindSpecs(t *testing.T) {
	tests := []struct {
		kind      PackageKind
		label     string
		uiBearing bool
	}{
		{KindApplication, "Application", true},
		{KindSystem, "Application", true},
		{KindPanelItem, "PanelItem", false},
		{KindService, "BackgroundService", false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			spec, ok := tt.kind.Spec()
			assert.True(t, ok)
			assert.True(t, tt.kind.Valid())
			assert.Equal(t, tt.label, spec.Label)
			assert.Equal(t, tt.uiBearing, spec.UIBearing)
			assert.Equal(t, DefaultIcon, spec.DefaultIcon)
			assert.NotEmpty(t, spec.DefaultTitle)
		})
	}

	_, ok := PackageKind("Widget").Spec()
	assert.False(t, ok)
	assert.False(t, PackageKind("").Valid())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		declared string
		want     PackageKind
		ok       bool
	}{
		{"Application", KindApplication, true},
		{" System ", KindSystem, true},
		{"PanelItem", KindPanelItem, true},
		{"Service", KindService, true},
		{"BackgroundService", KindService, true},
		{"application", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.declared, func(t *testing.T) {
			got, ok := ParseKind(tt.declared)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKindFromName(t *testing.T) {
	tests := []struct {
		name string
		want PackageKind
		ok   bool
	}{
		{"ApplicationTextpad", KindApplication, true},
		{"SystemSettings", KindSystem, true},
		{"PanelItemClock", KindPanelItem, true},
		{"ServiceSync", KindService, true},
		{"WidgetFoo", "", false},
		{"Textpad", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KindFromName(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArtifactExtensions(t *testing.T) {
	assert.Equal(t, ".class.php", ArtifactBackendStub.Extension())
	assert.Equal(t, ".css", ArtifactStylesheet.Extension())
	assert.Equal(t, ".js", ArtifactClientModule.Extension())
	assert.Equal(t, ".html", ArtifactMarkup.Extension())
	assert.Empty(t, ArtifactKind("zip").Extension())

	assert.Len(t, ArtifactKinds(), 4)
}

func TestWindowProperty(t *testing.T) {
	w := Window{Properties: map[string]interface{}{"type": "GtkWindow", "width": 300}}

	assert.Equal(t, "GtkWindow", w.Property("type"))
	assert.Empty(t, w.Property("width"))
	assert.Empty(t, w.Property("title"))
	assert.Empty(t, (&Window{}).Property("type"))
}

func TestDescriptorHasSchema(t *testing.T) {
	assert.False(t, (&Descriptor{}).HasSchema())
	assert.True(t, (&Descriptor{SchemaPath: "windows.json"}).HasSchema())
}
