package cmd

const (
	ErrorBindingFlag          = "unable to bind flag"
	ErrorResolvingCredentials = "could not resolve credentials"
	ErrorAuthenticating       = "could not authenticate"
)
