package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

func TestLoadDefaults(t *testing.T) {
	tests := []struct {
		name    string
		ttf     []byte
		wantErr bool
	}{
		{"game font", gomono.TTF, false},
		{"empty falls back", nil, false},
		{"garbage falls back", []byte("not a font"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := LoadDefaults(tt.ttf)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadDefaults() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, name := range []FontName{Small, Large} {
				if name.Get() == nil {
					t.Errorf("%s face missing", name)
				}
			}
		})
	}
}

func TestFaceSizes(t *testing.T) {
	if err := LoadDefaults(nil); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	small := Small.Get().Metrics().Height
	large := Large.Get().Metrics().Height
	if small >= large {
		t.Errorf("small height %v should be below large height %v", small, large)
	}
}

func TestGetUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get on an unregistered font did not panic")
		}
	}()
	FontName("missing").Get()
}
