package permissions

import "testing"

func TestGet(t *testing.T) {
	data := Get()
	if data == nil {
		t.Fatal("expected embedded permissions to load")
	}

	if len(data.Endpoints) == 0 {
		t.Fatal("expected at least one endpoint entry")
	}
}

func TestFindPermissions(t *testing.T) {
	data := Get()

	t.Run("known endpoint", func(t *testing.T) {
		p := data.FindPermissions("/rooms", "POST")

		if p.Path != "/rooms" {
			t.Errorf("expected /rooms entry, got %q", p.Path)
		}

		if p.Skip {
			t.Error("expected room creation to require auth")
		}
	})

	t.Run("public endpoint is skipped", func(t *testing.T) {
		p := data.FindPermissions("/rooms/{room_id}/reserved-dates", "GET")

		if !p.Skip {
			t.Error("expected reserved dates listing to skip auth")
		}
	})

	t.Run("unknown endpoint yields zero value", func(t *testing.T) {
		p := data.FindPermissions("/nope", "GET")

		if p.Path != "" || p.Skip {
			t.Errorf("expected zero Permission, got %+v", p)
		}
	})
}

func TestAllowsRole(t *testing.T) {
	tests := []struct {
		name       string
		permission Permission
		role       string
		want       bool
	}{
		{
			name:       "role in list",
			permission: Permission{Permissions: []string{"customer", "admin"}},
			role:       "customer",
			want:       true,
		},
		{
			name:       "role not in list",
			permission: Permission{Permissions: []string{"admin"}},
			role:       "customer",
			want:       false,
		},
		{
			name:       "empty list allows any authenticated role",
			permission: Permission{},
			role:       "customer",
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.permission.AllowsRole(tt.role); got != tt.want {
				t.Errorf("AllowsRole(%q) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}
