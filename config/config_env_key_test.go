package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"googleOAuth": map[string]any{
			"clientSecret": "",
		},
		"secretKey": map[string]any{
			"session": "",
		},
		"cookie": map[string]any{
			"sameSite": "lax",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GOOGLEOAUTH_CLIENTSECRET", want: "googleOAuth.clientSecret"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "COOKIE_SAMESITE", want: "cookie.sameSite"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
