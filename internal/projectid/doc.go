// internal/projectid/doc.go

/*
Package projectid provides a structured representation for project
identifiers, based on the canonical colon-delimited format `a:b:c`.

A leading colon (`:a:b`) is accepted and refers to the same identifier,
so settings files written with absolute project paths resolve to the
same registry keys as relative ones.
*/
package projectid
