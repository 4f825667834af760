package model

// Package model defines domain data structures used across the app: catalog
// pages and categories, uploaded files, the license record, and the mock
// progress statistics. Structures are plain values designed for direct
// binding in the UI.
