package registry

import "github.com/sivaosorg/simplelog"

// logf routes a formatted message to the logger registered under name.
// It does nothing before Init or after Shutdown.
func (r *Registry) logf(name string, level simplelog.Severity, format string, args ...any) error {
	l := r.Logger(name)
	if l == nil {
		return nil
	}
	return l.Logf(level, format, args...)
}

// CoreUnknown logs a formatted message at the Unknown level on the core logger.
func (r *Registry) CoreUnknown(format string, args ...any) error {
	return r.logf(CoreName, simplelog.Unknown, format, args...)
}

// CoreFailure logs a formatted message at the Failure level on the core logger.
func (r *Registry) CoreFailure(format string, args ...any) error {
	return r.logf(CoreName, simplelog.Failure, format, args...)
}

// CoreError logs a formatted message at the Error level on the core logger.
func (r *Registry) CoreError(format string, args ...any) error {
	return r.logf(CoreName, simplelog.Error, format, args...)
}

// CoreWarning logs a formatted message at the Warning level on the core logger.
func (r *Registry) CoreWarning(format string, args ...any) error {
	return r.logf(CoreName, simplelog.Warning, format, args...)
}

// CoreImportant logs a formatted message at the Important level on the core logger.
func (r *Registry) CoreImportant(format string, args ...any) error {
	return r.logf(CoreName, simplelog.Important, format, args...)
}

// CoreInfo logs a formatted message at the Info level on the core logger.
func (r *Registry) CoreInfo(format string, args ...any) error {
	return r.logf(CoreName, simplelog.Info, format, args...)
}

// CoreDebug logs a formatted message at the Debug level on the core logger.
func (r *Registry) CoreDebug(format string, args ...any) error {
	return r.logf(CoreName, simplelog.Debug, format, args...)
}

// CoreVerbose logs a formatted message at the Verbose level on the core logger.
func (r *Registry) CoreVerbose(format string, args ...any) error {
	return r.logf(CoreName, simplelog.Verbose, format, args...)
}

// ClientUnknown logs a formatted message at the Unknown level on the client logger.
func (r *Registry) ClientUnknown(format string, args ...any) error {
	return r.logf(ClientName, simplelog.Unknown, format, args...)
}

// ClientFailure logs a formatted message at the Failure level on the client logger.
func (r *Registry) ClientFailure(format string, args ...any) error {
	return r.logf(ClientName, simplelog.Failure, format, args...)
}

// ClientError logs a formatted message at the Error level on the client logger.
func (r *Registry) ClientError(format string, args ...any) error {
	return r.logf(ClientName, simplelog.Error, format, args...)
}

// ClientWarning logs a formatted message at the Warning level on the client logger.
func (r *Registry) ClientWarning(format string, args ...any) error {
	return r.logf(ClientName, simplelog.Warning, format, args...)
}

// ClientImportant logs a formatted message at the Important level on the client logger.
func (r *Registry) ClientImportant(format string, args ...any) error {
	return r.logf(ClientName, simplelog.Important, format, args...)
}

// ClientInfo logs a formatted message at the Info level on the client logger.
func (r *Registry) ClientInfo(format string, args ...any) error {
	return r.logf(ClientName, simplelog.Info, format, args...)
}

// ClientDebug logs a formatted message at the Debug level on the client logger.
func (r *Registry) ClientDebug(format string, args ...any) error {
	return r.logf(ClientName, simplelog.Debug, format, args...)
}

// ClientVerbose logs a formatted message at the Verbose level on the client logger.
func (r *Registry) ClientVerbose(format string, args ...any) error {
	return r.logf(ClientName, simplelog.Verbose, format, args...)
}
