// Package artifact handles the WAR archive side of a convergence pass:
// deriving a version tag from the artifact's filename and staging the
// archive into local temporary storage so it can be uploaded to the
// manager.
package artifact
