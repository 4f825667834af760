package catalog

// Package catalog holds the static, read-only list of categories and coloring
// pages together with the mock progress statistics. The data ships embedded
// as YAML and may be replaced at startup from an override directory.
