package usecasecontract

// IAppLogger defines the interface for application logging.
type IAppLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// IConfigProvider defines the interface for configuration access.
type IConfigProvider interface {
	GetPort() string
	GetBcryptCost() int
	GetSeedUserPassword() string
	GetSeedAdminPassword() string
}

// IValidator defines the interface for input validation.
type IValidator interface {
	ValidateEmail(email string) error
	ValidateNoteTitle(title string) error
}
