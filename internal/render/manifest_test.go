package render

import (
	"strings"
	"testing"

	"github.com/go-faster/errors"
)

const manifestTemplate = `<manifest xmlns:android="http://schemas.android.com/apk/res/android">
    <application>
        <meta-data android:name="com.google.android.geo.API_KEY" android:value="${GOOGLE_MAPS_API_KEY}"/>
        <meta-data android:name="com.google.android.geo.MAP_ID" android:value="${GOOGLE_MAPS_MAP_ID}"/>
        <meta-data android:name="other" android:value="${applicationId}"/>
    </application>
</manifest>`

func TestExpandManifest(t *testing.T) {
	placeholders := map[string]string{
		"GOOGLE_MAPS_API_KEY": "XYZ123",
		"GOOGLE_MAPS_MAP_ID":  "a&b",
	}

	out, err := ExpandManifest([]byte(manifestTemplate), placeholders, false)
	if err != nil {
		t.Fatalf("ExpandManifest() error = %v", err)
	}

	got := string(out)
	for _, want := range []string{
		`android:value="XYZ123"`,
		`android:value="a&amp;b"`,
		`android:value="${applicationId}"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %s:\n%s", want, got)
		}
	}
}

func TestExpandManifestStrict(t *testing.T) {
	_, err := ExpandManifest([]byte(manifestTemplate), map[string]string{"GOOGLE_MAPS_API_KEY": "x"}, true)
	if err == nil {
		t.Fatal("ExpandManifest() strict should fail on unknown placeholders")
	}

	var unknown *UnknownPlaceholdersError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want *UnknownPlaceholdersError", err)
	}
	want := []string{"GOOGLE_MAPS_MAP_ID", "applicationId"}
	if len(unknown.Names) != len(want) {
		t.Fatalf("Names = %v, want %v", unknown.Names, want)
	}
	for i := range want {
		if unknown.Names[i] != want[i] {
			t.Errorf("Names[%d] = %q, want %q", i, unknown.Names[i], want[i])
		}
	}
}

func TestExpandManifestNoTokens(t *testing.T) {
	in := []byte("<manifest/>")
	out, err := ExpandManifest(in, nil, true)
	if err != nil {
		t.Fatalf("ExpandManifest() error = %v", err)
	}
	if string(out) != string(in) {
		t.Errorf("output = %q, want unchanged", out)
	}
}
