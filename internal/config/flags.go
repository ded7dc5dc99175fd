package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a backend HTTP address in format [host]:[port]
//	-grpc-address backend gRPC health address in format [host]:[port]
//	-d local lock store path (SQLite file)
//	-c/-config json file path with configs
//	-lock-timeout inactivity window (e.g., "60s", "5m")
//	-forced-lock mark the lock as non-dismissable
//	-require-biometrics require biometric or custom-passcode verification
//	-use-custom-passcode use the app passcode instead of the account password
//	-inform-forced-lock show the one-time forced-lock interstitial
//	-device-secret machine-bound passcode sealing secret
//	-hash-key request signing key
//	-token-sign-key token signing key (dev server)
//	-token-issuer token issuer (dev server)
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-idle-tick idle re-check interval (e.g., "1s")
func ParseFlags() *StructuredConfig {
	var adapterAddress, grpcAdapterAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var lockTimeout time.Duration
	var forcedLock bool
	var requireBiometrics bool
	var useCustomPasscode bool
	var informForcedLock bool
	var deviceSecret string
	var hashKey string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var idleTick time.Duration

	flag.Var(&adapterAddress, "a", "Backend HTTP address host:port")
	flag.Var(&grpcAdapterAddress, "grpc-address", "Backend gRPC health address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local lock store path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&lockTimeout, "lock-timeout", 0, "Lock timeout (e.g., 60s, 5m)")
	flag.BoolVar(&forcedLock, "forced-lock", false, "Forced (non-dismissable) lock")
	flag.BoolVar(&requireBiometrics, "require-biometrics", false, "Require biometrics or custom passcode")
	flag.BoolVar(&useCustomPasscode, "use-custom-passcode", false, "Use custom passcode instead of account password")
	flag.BoolVar(&informForcedLock, "inform-forced-lock", false, "Show forced-lock interstitial once")
	flag.StringVar(&deviceSecret, "device-secret", "", "Passcode sealing secret")
	flag.StringVar(&hashKey, "hash-key", "", "Security hash key")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&idleTick, "idle-tick", 0, "Idle re-check interval (e.g., 1s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DeviceSecret:  deviceSecret,
			HashKey:       hashKey,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Lock: Lock{
			Timeout:                lockTimeout,
			Forced:                 forcedLock,
			RequireBiometrics:      requireBiometrics,
			UseCustomPasscode:      useCustomPasscode,
			InformUserOfForcedLock: informForcedLock,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress.String(),
			GRPCAddress:    grpcAdapterAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			IdleTick: idleTick,
		},
		Server:       Server{},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
