package registry

import (
	"context"
	"testing"
)

type fakeFrontend struct{ id string }

func (f fakeFrontend) ID() string                         { return f.id }
func (f fakeFrontend) Title() string                      { return "Fake " + f.id }
func (f fakeFrontend) Run(context.Context, Options) error { return nil }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-fake", func() Frontend { return fakeFrontend{id: "zz-fake"} })

	if !Exists("zz-fake") {
		t.Fatal("registered frontend does not exist")
	}
	fe, err := Create("zz-fake")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if fe.ID() != "zz-fake" {
		t.Errorf("ID() = %q", fe.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-fake" {
			found = true
			if info.Title != "Fake zz-fake" {
				t.Errorf("title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() does not include the frontend")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-frontend"); err == nil {
		t.Error("expected error for unknown frontend")
	}
	if Exists("no-such-frontend") {
		t.Error("unknown frontend exists")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Frontend { return fakeFrontend{id: "zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("zz-dup", func() Frontend { return fakeFrontend{id: "zz-dup"} })
}

func TestListSorted(t *testing.T) {
	Register("zz-b", func() Frontend { return fakeFrontend{id: "zz-b"} })
	Register("zz-a", func() Frontend { return fakeFrontend{id: "zz-a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
