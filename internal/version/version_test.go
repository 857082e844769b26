package version

import "testing"

func TestFull(t *testing.T) {
	origVersion, origCommit := Version, Commit
	defer func() {
		Version, Commit = origVersion, origCommit
	}()

	Version, Commit = "1.2.3", "none"
	if got := Full(); got != "1.2.3" {
		t.Errorf("Full() = %q, want %q", got, "1.2.3")
	}

	Commit = "abc1234"
	if got := Full(); got != "1.2.3 (abc1234)" {
		t.Errorf("Full() = %q, want %q", got, "1.2.3 (abc1234)")
	}
}
