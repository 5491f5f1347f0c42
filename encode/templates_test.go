package encode

import (
	"strings"
	"testing"
	"time"
)

func TestExpandOutputName(t *testing.T) {
	env := testEnv(t)
	env.Cfg.Video.FPS = 24

	tests := []struct {
		name     string
		template string
		want     string
		wantErr  bool
	}{
		{
			name:     "plain name",
			template: "{{ .Name }}",
			want:     "seq",
		},
		{
			name:     "geometry and fps",
			template: "{{ .Name }}_{{ .Width }}x{{ .Height }}@{{ .FPS }}",
			want:     "seq_640x480@24",
		},
		{
			name:     "sprig functions available",
			template: "{{ .Name | upper }}",
			want:     "SEQ",
		},
		{
			name:     "path separators rejected",
			template: "sub/{{ .Name }}",
			wantErr:  true,
		},
		{
			name:     "parse error",
			template: "{{ .Name",
			wantErr:  true,
		},
		{
			name:     "unknown field",
			template: "{{ .Bogus }}",
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env.Cfg.Video.OutputNameTemplate = tt.template
			got, err := expandOutputName("seq", 640, 480, env)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expandOutputName() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("expandOutputName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandOutputName_Date(t *testing.T) {
	env := testEnv(t)
	env.Cfg.Video.OutputNameTemplate = "{{ .Name }}-{{ .Date }}"

	got, err := expandOutputName("seq", 1, 1, env)
	if err != nil {
		t.Fatalf("expandOutputName() error = %v", err)
	}
	if !strings.HasPrefix(got, "seq-") || !strings.Contains(got, time.Now().Format("2006")) {
		t.Errorf("expandOutputName() = %q, expected current date suffix", got)
	}
}
