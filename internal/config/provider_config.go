package config

// ProviderConfig describes the hosted identity provider and this client's registration with it.
type ProviderConfig interface {
	GetCognitoDomain() string
	GetClientID() string
	GetRedirectURI() string
	// GetIssuerURL is optional; when set, ID tokens are verified against the issuer's keys.
	GetIssuerURL() string
}

type Provider struct {
	CognitoDomain string `env:"COGNITO_DOMAIN,required,notEmpty"`
	ClientID      string `env:"CLIENT_ID,required,notEmpty"`
	RedirectURI   string `env:"REDIRECT_URI,required,notEmpty"`
	IssuerURL     string `env:"ISSUER_URL"`
}

var _ ProviderConfig = Provider{}

func (p Provider) GetCognitoDomain() string {
	return p.CognitoDomain
}

func (p Provider) GetClientID() string {
	return p.ClientID
}

func (p Provider) GetRedirectURI() string {
	return p.RedirectURI
}

func (p Provider) GetIssuerURL() string {
	return p.IssuerURL
}
