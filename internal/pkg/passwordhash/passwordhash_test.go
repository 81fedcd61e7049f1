package passwordhash

import "testing"

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	digest, err := Hash("Correct1!")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if digest == "Correct1!" {
		t.Fatal("digest equals plaintext")
	}
	if !Verify("Correct1!", digest) {
		t.Fatal("Verify rejected the original plaintext")
	}
	if Verify("Wrong1!!!", digest) {
		t.Fatal("Verify accepted a different plaintext")
	}
}

func TestHashIsSalted(t *testing.T) {
	t.Parallel()

	first, err := Hash("SamePass1!")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	second, err := Hash("SamePass1!")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same plaintext are identical")
	}
	if !Verify("SamePass1!", first) || !Verify("SamePass1!", second) {
		t.Fatal("salted digests must both verify against the plaintext")
	}
}

func TestHashEmptyPassword(t *testing.T) {
	t.Parallel()

	if _, err := Hash(""); err == nil {
		t.Fatal("expected error for empty password")
	}
}
