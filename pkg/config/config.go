package config

import (
	"time"
)

type DB struct {
	Url string `envconfig:"URL"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

type Auth struct {
	Jwt *Jwt `envconfig:"JWT"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[gibraltar]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

// Uploads configures where mobile-deposit check images are written.
type Uploads struct {
	Dir string `envconfig:"DIR" default:"uploads"`
}

// Support configures the canned support-chat widget.
type Support struct {
	MaxMessages int           `envconfig:"MAX_MESSAGES" default:"20"`
	TypingDelay time.Duration `envconfig:"TYPING_DELAY" default:"1500ms"`
	AgentName   string        `envconfig:"AGENT_NAME" default:"Sarah"`
}

// Statement configures the PDF statement header block.
type Statement struct {
	BankName     string `envconfig:"BANK_NAME" default:"Gibraltar Private Bank & Trust"`
	AddressLine1 string `envconfig:"ADDRESS_LINE1" default:"400 Arthur Godfrey Road, Suite 506"`
	AddressLine2 string `envconfig:"ADDRESS_LINE2" default:"Miami Beach, FL 33140"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Auth      *Auth      `envconfig:"AUTH"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Uploads   *Uploads   `envconfig:"UPLOADS"`
	Support   *Support   `envconfig:"SUPPORT"`
	Statement *Statement `envconfig:"STATEMENT"`
}
