package main

import "testing"

func TestBindPlaceholdersAcceptsWellFormedTree(t *testing.T) {
	if _, err := bindPlaceholders("Root\n|-- A\n|-- B\n"); err != nil {
		t.Fatalf("bindPlaceholders: %v", err)
	}
}

func TestBindPlaceholdersRejectsChildlessRegion(t *testing.T) {
	if _, err := bindPlaceholders("[Root]\n"); err == nil {
		t.Fatal("expected an error for a childless region")
	}
}
