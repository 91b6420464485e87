package analytics

import "testing"

func TestCertificationRecommendations(t *testing.T) {
	a := New(nil)

	recs := a.CertificationRecommendations([]string{"Python", "Kubernetes"})
	if len(recs) != 2 {
		t.Fatalf("expected 2 entries, got %+v", recs)
	}
	if recs["Python"][0] != "Python Institute PCAP" {
		t.Fatalf("unexpected python recommendations: %+v", recs["Python"])
	}
	if recs["Kubernetes"][0] != "Certified Kubernetes Administrator (CKA)" {
		t.Fatalf("unexpected kubernetes recommendations: %+v", recs["Kubernetes"])
	}
}

func TestCertificationRecommendations_UnmatchedSkillOmitted(t *testing.T) {
	a := New(nil)

	recs := a.CertificationRecommendations([]string{"Python", "Basket Weaving"})
	if _, ok := recs["Basket Weaving"]; ok {
		t.Fatalf("expected unmatched skill to be omitted, got %+v", recs)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 entry, got %+v", recs)
	}
}

func TestCertificationRecommendations_SubstringBothWays(t *testing.T) {
	a := New(nil)

	// skill contains the keyword
	recs := a.CertificationRecommendations([]string{"AWS Lambda"})
	if recs["AWS Lambda"][0] != "AWS Certified Solutions Architect" {
		t.Fatalf("unexpected recommendations: %+v", recs)
	}

	// keyword contains the skill
	recs = a.CertificationRecommendations([]string{"vision"})
	if recs["vision"][0] != "Computer Vision Specialization" {
		t.Fatalf("unexpected recommendations: %+v", recs)
	}
}

func TestCertificationRecommendations_FirstTableEntryWins(t *testing.T) {
	a := New(nil)

	// "python machine learning" matches the python entry before the
	// machine learning entry
	recs := a.CertificationRecommendations([]string{"Python Machine Learning"})
	if recs["Python Machine Learning"][0] != "Python Institute PCAP" {
		t.Fatalf("unexpected recommendations: %+v", recs)
	}
}

func TestCertificationRecommendations_CaseInsensitive(t *testing.T) {
	a := New(nil)

	recs := a.CertificationRecommendations([]string{"TENSORFLOW"})
	if recs["TENSORFLOW"][0] != "Google TensorFlow Developer Certificate" {
		t.Fatalf("unexpected recommendations: %+v", recs)
	}
}

func TestCertificationRecommendations_EmptyInput(t *testing.T) {
	recs := New(nil).CertificationRecommendations(nil)
	if len(recs) != 0 {
		t.Fatalf("expected empty result, got %+v", recs)
	}
}
