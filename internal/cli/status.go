package cli

// DataFileStatus describes the data file as it is on disk
type DataFileStatus struct {
	Path   string
	Exists bool
	Size   int64
	Lines  int
	Digest string
}

// InspectDataFile reports on the configured data file without modifying it
func InspectDataFile(ctx *WorkflowContext) (DataFileStatus, error) {
	status := DataFileStatus{Path: ctx.Config.DataFile()}

	exists, err := ctx.FS.FileExists(status.Path)
	if err != nil {
		return status, err
	}
	if !exists {
		return status, nil
	}
	status.Exists = true

	if status.Size, err = ctx.FS.GetFileSize(status.Path); err != nil {
		return status, err
	}

	lines, err := ctx.Files.ReadAll(status.Path)
	if err != nil {
		return status, err
	}
	status.Lines = len(lines)

	if status.Digest, err = ctx.FS.Checksum(status.Path); err != nil {
		return status, err
	}
	return status, nil
}
