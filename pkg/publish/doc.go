// Package publish exports rendered pages to static storage.
//
// A Store abstracts the destination; DirStore writes to a local
// directory (the export workflow) and S3Store uploads to an S3 bucket
// (the publish workflow). Publisher renders elements and hands the HTML
// to whichever store it was built with.
package publish
