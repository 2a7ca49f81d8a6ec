package constants

// Config
const VerboseEnvVar = "VERBOSE"
const EnvEnvVar = "HOLDCLOUD_ENV"
const BaseURLEnvVar = "HOLDCLOUD_BASE_URL"
const UsernameEnvVar = "HOLDCLOUD_USERNAME"
const PasswordEnvVar = "HOLDCLOUD_PASSWORD"

// File system
const GlobalConfigFileName = ".holdcloud/config.yml"

// HTTP
const TokenHeader = "jweToken"
const RequestIDHeader = "X-Request-Id"
const UserAgent = "hcctl/0.1.0"

// API paths, relative to the base URL
const PathLogin = "login"
const PathUnionServices = "project/%d/unionservices"
const PathContainerApps = "project/%d/containerapps"
const PathContainerApp = "containerapp/%d"
const PathInstances = "containerapp/%d/instances"
const PathState = "containerapp/%d/state"
const PathRestart = "containerapp/%d/restart"

// Name checks only look at the first page of this size
const NameCheckPageSize = 10

// Error messages
const ErrMsgAuthFailed = "Authentication failed"
const ErrMsgNoPassword = "No password given. Use `--password` or set HOLDCLOUD_PASSWORD."
const ErrMsgNoUsername = "No username configured. You can use `hcctl configure --username` to set one."
