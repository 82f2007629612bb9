// Cmpatch creates a patch description from Plastic SCM changesets or branches.
//
// It runs "cm diff" with a structured record format and re-emits every
// record prefixed with "[-]: ", exiting non-zero when the arguments are
// invalid or cm fails.
//
// Usage:
//
//	cmpatch br:/main/task001          # diff a branch
//	cmpatch cs:1200                   # diff a changeset against its parent
//	cmpatch cs:1200 cs:1250           # diff two changesets
//	cmpatch cs:1200 cs:1250 --compare eol
package main
