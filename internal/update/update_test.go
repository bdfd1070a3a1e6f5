package update

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"v1.2.3":  "1.2.3",
		" 1.2.3 ": "1.2.3",
		"1.0":     "1.0",
	}
	for in, want := range cases {
		if got := normalize(in); got != want {
			t.Fatalf("normalize(%q)=%q want %q", in, got, want)
		}
	}
}

func TestIsNewer(t *testing.T) {
	cases := []struct {
		latest, current string
		want            bool
	}{
		{"1.2.3", "1.2.2", true},
		{"1.2.3", "1.2.3", false},
		{"1.2.3", "1.3.0", false},
		{"2.0", "1.9.9", true},
		{"garbage", "1.0.0", false},
		{"1.0.0", "garbage", false},
	}
	for _, c := range cases {
		if got := isNewer(c.latest, c.current); got != c.want {
			t.Fatalf("isNewer(%q,%q)=%v want %v", c.latest, c.current, got, c.want)
		}
	}
}

func TestCheckSkipsWhenOffline(t *testing.T) {
	latest, newer, err := Check("1.0.0", true)
	if err != nil || latest != "" || newer {
		t.Fatalf("offline check must be a no-op, got (%q,%v,%v)", latest, newer, err)
	}
}

func TestCheckSkipsInCI(t *testing.T) {
	t.Setenv("CI", "1")
	latest, newer, err := Check("1.0.0", false)
	if err != nil || latest != "" || newer {
		t.Fatalf("CI check must be a no-op, got (%q,%v,%v)", latest, newer, err)
	}
}
