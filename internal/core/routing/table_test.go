package routing

import "testing"

func TestDefaultRoutesAreValid(t *testing.T) {
	if _, err := NewTable(DefaultRoutes); err != nil {
		t.Fatalf("default routes rejected: %v", err)
	}
}

func TestNewTable_Duplicate(t *testing.T) {
	_, err := NewTable([]Route{{Name: "a", Path: "/a"}, {Name: "a", Path: "/b"}})
	if err == nil {
		t.Fatalf("expected duplicate name error")
	}
}

func TestTable_Match(t *testing.T) {
	table := MustTable(DefaultRoutes)

	tests := []struct {
		path      string
		wantName  string
		wantParam string
	}{
		{"/", ViewHome, ""},
		{"/resources", "resources", ""},
		{"/resources/upload", "resource-upload", ""},
		{"/resources/42", "resource-detail", "42"},
		{"/forum/topic/7/", "topic-detail", "7"},
		{"/chat/3", "chat-detail", "3"},
		{"/admin", "admin", ""},
		{"/does/not/exist", ViewNotFound, ""},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			r, params, ok := table.Match(tc.path)
			if !ok {
				t.Fatalf("no match for %s", tc.path)
			}
			if r.Name != tc.wantName {
				t.Fatalf("matched %s, want %s", r.Name, tc.wantName)
			}
			if tc.wantParam != "" && params["id"] != tc.wantParam {
				t.Fatalf("id param = %q, want %q", params["id"], tc.wantParam)
			}
		})
	}
}

func TestTable_MatchWithoutCatchAll(t *testing.T) {
	table := MustTable([]Route{{Name: "home", Path: "/"}})
	if _, _, ok := table.Match("/missing"); ok {
		t.Fatalf("expected no match")
	}
}

func TestTable_LookupAndPathFor(t *testing.T) {
	table := MustTable(DefaultRoutes)

	r, ok := table.Lookup("admin")
	if !ok || r.Access != AccessRequiresAdmin {
		t.Fatalf("unexpected admin route %+v", r)
	}

	p, ok := table.PathFor("chat-detail", map[string]string{"id": "9"})
	if !ok || p != "/chat/9" {
		t.Fatalf("PathFor = %q, %v", p, ok)
	}
	if p, _ := table.PathFor(ViewHome, nil); p != "/" {
		t.Fatalf("home path = %q", p)
	}
	if _, ok := table.PathFor("chat-detail", nil); ok {
		t.Fatalf("expected failure for missing param")
	}
}
