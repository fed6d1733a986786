package models

// IPInfo mirrors the ipwho.is lookup payload.
type IPInfo struct {
	IP            string       `json:"ip" example:"8.8.8.8"`
	Success       bool         `json:"success" example:"true"`
	Message       string       `json:"message,omitempty"`
	Type          string       `json:"type" example:"IPv4"`
	Continent     string       `json:"continent" example:"North America"`
	ContinentCode string       `json:"continent_code" example:"NA"`
	Country       string       `json:"country" example:"United States"`
	CountryCode   string       `json:"country_code" example:"US"`
	Region        string       `json:"region" example:"California"`
	RegionCode    string       `json:"region_code" example:"CA"`
	City          string       `json:"city" example:"Mountain View"`
	Latitude      float64      `json:"latitude" example:"37.386"`
	Longitude     float64      `json:"longitude" example:"-122.0838"`
	IsEU          bool         `json:"is_eu"`
	Postal        string       `json:"postal" example:"94039"`
	CallingCode   string       `json:"calling_code" example:"1"`
	Capital       string       `json:"capital" example:"Washington D.C."`
	Borders       string       `json:"borders" example:"CA,MX"`
	Flag          IPFlag       `json:"flag"`
	Connection    IPConnection `json:"connection"`
	Timezone      IPTimezone   `json:"timezone"`
	Security      *IPSecurity  `json:"security,omitempty"`
}

type IPFlag struct {
	Img          string `json:"img"`
	Emoji        string `json:"emoji"`
	EmojiUnicode string `json:"emoji_unicode"`
}

type IPConnection struct {
	ASN    int    `json:"asn" example:"15169"`
	Org    string `json:"org" example:"Google LLC"`
	ISP    string `json:"isp" example:"Google LLC"`
	Domain string `json:"domain" example:"google.com"`
}

type IPTimezone struct {
	ID          string `json:"id" example:"America/Los_Angeles"`
	Abbr        string `json:"abbr" example:"PDT"`
	IsDST       bool   `json:"is_dst"`
	Offset      int    `json:"offset" example:"-25200"`
	UTC         string `json:"utc" example:"-07:00"`
	CurrentTime string `json:"current_time"`
}

type IPSecurity struct {
	Anonymous bool `json:"anonymous"`
	Proxy     bool `json:"proxy"`
	VPN       bool `json:"vpn"`
	Tor       bool `json:"tor"`
	Hosting   bool `json:"hosting"`
}

// Safe reports whether none of proxy, VPN or Tor is flagged. Missing security data counts as safe.
func (i IPInfo) Safe() bool {
	if i.Security == nil {
		return true
	}
	return !i.Security.Proxy && !i.Security.VPN && !i.Security.Tor
}
