// Package fileutil provides the file system side of a search run.
//
// It exposes three pieces:
//
//   - FileSystem: the narrow listing/open interface the rest of the program
//     consumes. OS() binds it to the real file system; FromFS() binds it to
//     any io/fs.FS, which tests use with testing/fstest.MapFS.
//   - Walker: a pre-order, single-pass sequence of models.DirectoryVisit
//     values. A directory whose base name is in the SkipSet is reported as
//     skipped and nothing below it is ever visited.
//   - MimeDetector: content sniffing that decides whether a file is text.
//
// # Walking
//
//	w := fileutil.NewWalker(fileutil.OS(), fileutil.NewSkipSet("node_modules", ".git"))
//	for visit, err := range w.Walk(".") {
//	    if err != nil {
//	        return err
//	    }
//	    if visit.Skipped {
//	        continue
//	    }
//	    for _, name := range visit.Files {
//	        // ...
//	    }
//	}
//
// Paths are built by appending child names to the root exactly as given, so
// a walk from "." yields "./dir1", "./dir1/sub" and so on.
//
// # Errors
//
// A directory that cannot be listed produces a *ListError and ends the walk.
// Listing failures inside a skipped directory are ignored since its contents
// are never used.
package fileutil
