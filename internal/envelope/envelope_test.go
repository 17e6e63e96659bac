package envelope

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestOKAndErr(t *testing.T) {
	ok := OK(map[string]any{"a": 1})
	if ok.Status != StatusSuccess || ok.Timestamp == "" {
		t.Fatalf("unexpected envelope: %+v", ok)
	}

	e := Err("id required")
	if e.Status != StatusError || e.Message != "id required" {
		t.Fatalf("unexpected envelope: %+v", e)
	}
}

func TestOKCountRendersCount(t *testing.T) {
	env := OKCount([]int{1, 2}, 2).WithQuery("q")
	b, err := json.Marshal(env)
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	if !strings.Contains(s, `"count":2`) {
		t.Fatalf("count missing: %s", s)
	}
	if !strings.Contains(s, `"query":"q"`) {
		t.Fatalf("query missing: %s", s)
	}
}

func TestErrOmitsData(t *testing.T) {
	b, err := json.Marshal(Err("nope"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), `"data"`) {
		t.Fatalf("error envelope must omit data: %s", b)
	}
}
