package driver

import "testing"

func TestStripBlock(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "no markers leaves content unchanged",
			content: "memory_limit = 128M\n",
			want:    "memory_limit = 128M\n",
		},
		{
			name: "removes a single block including markers",
			content: "memory_limit = 128M\n" +
				xdebugStartMark + "\n" +
				"zend_extension=xdebug\n" +
				xdebugEndMark + "\n" +
				"date.timezone = UTC\n",
			want: "memory_limit = 128M\ndate.timezone = UTC\n",
		},
		{
			name: "removes multiple blocks",
			content: xdebugStartMark + "\nfirst\n" + xdebugEndMark + "\n" +
				"keep\n" +
				xdebugStartMark + "\nsecond\n" + xdebugEndMark + "\n",
			want: "keep\n",
		},
		{
			name: "leaves another extension's block alone",
			content: pcovStartMark + "\n" +
				"extension=pcov\n" +
				pcovEndMark + "\n",
			want: pcovStartMark + "\nextension=pcov\n" + pcovEndMark + "\n",
		},
		{
			name:    "dangling start marker is left in place",
			content: "memory_limit = 128M\n" + xdebugStartMark + "\nzend_extension=xdebug\n",
			want:    "memory_limit = 128M\n" + xdebugStartMark + "\nzend_extension=xdebug\n",
		},
		{
			name:    "block at end of file without trailing newline",
			content: "keep\n" + xdebugStartMark + "\nbody\n" + xdebugEndMark,
			want:    "keep\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripBlock(tt.content, xdebugStartMark, xdebugEndMark)
			if got != tt.want {
				t.Errorf("stripBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDirectiveValue(t *testing.T) {
	t.Run("last uncommented occurrence wins", func(t *testing.T) {
		content := "xdebug.mode = develop\n;xdebug.mode = trace\nxdebug.mode = debug\n"
		value, ok := directiveValue(content, "xdebug.mode")
		if !ok || value != "debug" {
			t.Errorf("directiveValue = %q, %v; want debug", value, ok)
		}
	})

	t.Run("commented lines never match", func(t *testing.T) {
		content := ";xdebug.mode = debug\n"
		if _, ok := directiveValue(content, "xdebug.mode"); ok {
			t.Error("commented directive should not be read")
		}
	})

	t.Run("quotes are stripped from the value", func(t *testing.T) {
		value, ok := directiveValue(`xdebug.idekey = "PHPSTORM"`, "xdebug.idekey")
		if !ok || value != "PHPSTORM" {
			t.Errorf("directiveValue = %q, %v; want PHPSTORM", value, ok)
		}
	})

	t.Run("key match is exact up to the equals sign", func(t *testing.T) {
		if _, ok := directiveValue("xdebug.mode_extra = x\n", "xdebug.mode"); ok {
			t.Error("longer key should not match a shorter lookup")
		}
	})
}

func TestSettingsWithDefaults(t *testing.T) {
	got := Settings{}.withDefaults()
	want := DefaultSettings()
	if got != want {
		t.Errorf("withDefaults() = %+v, want %+v", got, want)
	}

	custom := Settings{ClientHost: "10.0.0.5", ClientPort: 9000, IdeKey: "VSCODE", Mode: "develop"}
	if got := custom.withDefaults(); got != custom {
		t.Errorf("withDefaults() overwrote explicit values: %+v", got)
	}
}
