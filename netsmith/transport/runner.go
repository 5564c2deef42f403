package transport

import (
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/time/rate"

	"github.com/netsmith-ops/netsmith/logger"
)

// CommandRunner executes one CLI command on the device and returns its
// output. Implementations own session setup and teardown.
type CommandRunner interface {
	Run(ctx context.Context, command string) (string, error)
}

// SSHDialer abstracts ssh.Dial so tests can inject a fake.
type SSHDialer interface {
	Dial(network, addr string, config *ssh.ClientConfig, timeout time.Duration) (*ssh.Client, error)
}

// RealSSHDialer dials through the crypto/ssh package.
type RealSSHDialer struct{}

func (RealSSHDialer) Dial(network, addr string, config *ssh.ClientConfig, timeout time.Duration) (*ssh.Client, error) {
	config.Timeout = timeout
	return ssh.Dial(network, addr, config)
}

// Credentials hold what is needed to authenticate a CLI session.
// Resolution of these values (prompts, inventory files) happens in the
// caller; the transport only consumes them.
type Credentials struct {
	User          string
	Password      string
	KeyPassphrase string
}

// SSHRunner runs device CLI commands over SSH, one session per command.
// A rate limiter keeps the command rate below what the device CLI
// tolerates.
type SSHRunner struct {
	Hostname string
	Port     int
	Dialer   SSHDialer
	Limiter  *rate.Limiter
	Log      logger.Logger
	Credentials
}

const defaultDialTimeout = 30 * time.Second

// NewSSHRunner builds a runner for hostname with commandsPerSecond as
// the CLI rate ceiling.
func NewSSHRunner(hostname string, creds Credentials, commandsPerSecond float64) *SSHRunner {
	if commandsPerSecond <= 0 {
		commandsPerSecond = 10
	}
	return &SSHRunner{
		Hostname:    hostname,
		Port:        22,
		Dialer:      RealSSHDialer{},
		Limiter:     rate.NewLimiter(rate.Limit(commandsPerSecond), 1),
		Log:         logger.New(),
		Credentials: creds,
	}
}

func (r *SSHRunner) clientConfig() (*ssh.ClientConfig, error) {
	var authMethod ssh.AuthMethod

	if r.Password != "" {
		r.Log.Debug("using password authentication", "hostname", r.Hostname)
		authMethod = ssh.Password(r.Password)
	} else {
		r.Log.Debug("using public key authentication", "hostname", r.Hostname)
		var keyManager SSHKeyManager
		if r.KeyPassphrase != "" {
			keyManager = FileSSHKeyManager{}
		} else {
			keyManager = AgentSSHKeyManager{}
		}

		keys, err := keyManager.ReadPrivateKeys(r.KeyPassphrase)
		if err != nil {
			return nil, err
		}
		authMethod = ssh.PublicKeysCallback(func() ([]ssh.Signer, error) {
			return keys, nil
		})
	}

	return &ssh.ClientConfig{
		User:            r.User,
		Auth:            []ssh.AuthMethod{authMethod},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}, nil
}

// Run executes command in a fresh SSH session and returns its stdout.
func (r *SSHRunner) Run(ctx context.Context, command string) (string, error) {
	if r.Dialer == nil {
		return "", errors.New("ssh dialer is not initialized")
	}

	if r.Limiter != nil {
		if err := r.Limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	config, err := r.clientConfig()
	if err != nil {
		return "", err
	}

	dialTimeout := defaultDialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		dialTimeout = time.Until(deadline)
	}

	port := r.Port
	if port == 0 {
		port = 22
	}
	addr := net.JoinHostPort(r.Hostname, strconv.Itoa(port))

	client, err := r.Dialer.Dial("tcp", addr, config, dialTimeout)
	if err != nil {
		return "", err
	}
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return "", err
	}
	defer session.Close()

	r.Log.Debug("executing device command", "hostname", r.Hostname, "command", command)

	var stdout, stderr strings.Builder
	session.Stdout = &stdout
	session.Stderr = &stderr

	if err := session.Run(command); err != nil {
		r.Log.Error("device command failed",
			"hostname", r.Hostname, "command", command,
			"stderr", stderr.String(), "error", err)
		return stdout.String(), err
	}
	return stdout.String(), nil
}
