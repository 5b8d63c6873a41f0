// Package scp generates a service control policy from a service approval
// export.
//
// The export is a CSV file with (at least) a service namespace column and a
// free-text approval status column. Every namespace whose status is
// classified as approved becomes a "<namespace>:*" action of a single Allow
// statement:
//
//	srv := scp.New(scp.WithConfig(cfg))
//	data, err := srv.Generate(ctx, source.FromURL(afs.New(), "export.csv"))
//
// See the approval, export, policy and source sub-packages for details.
package scp
