package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

// StorageConfig locates the on-disk JSON documents and the evidence upload
// directory. Both stores are rewritten wholesale on every mutation.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// AdminConfig describes the bootstrap administrator account created on
// first startup when no administrator exists yet.
type AdminConfig struct {
	Email    string `mapstructure:"email"`
	Name     string `mapstructure:"name"`
	Phone    string `mapstructure:"phone"`
	Password string `mapstructure:"password"`
}

// WorkflowConfig controls complaint status transition checking.
// StrictTransitions enforces the linear Filed -> Under Review ->
// In Progress -> {Resolved, Rejected} ordering; the default leaves
// administrators free to set any status from any status.
type WorkflowConfig struct {
	StrictTransitions bool `mapstructure:"strict_transitions"`
}
