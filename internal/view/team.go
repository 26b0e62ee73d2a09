package view

type Member struct {
	Name     string
	Role     string
	Github   string
	Twitter  string
	Telegram string
	Website  string
}

func (m Member) GithubURL() string {
	return "https://github.com/" + m.Github
}

func (m Member) TwitterURL() string {
	if m.Twitter == "" {
		return ""
	}
	return "https://x.com/" + m.Twitter
}

func (m Member) TelegramURL() string {
	if m.Telegram == "" {
		return ""
	}
	return "https://t.me/" + m.Telegram
}

func (m Member) WebsiteURL() string {
	if m.Website == "" {
		return ""
	}
	return "https://" + m.Website
}

var Team = []Member{
	{Name: "Toufu", Role: "Founder/Lead Developer", Github: "toufune", Twitter: "toufu14271"},
	{Name: "Maitani-Sakura", Role: "Co-Founder/Developer", Github: "maitani-sakura", Twitter: "M_Sakura479", Telegram: "M_Sakura479", Website: "bento.me/maitani-sakura"},
	{Name: "soralis0912", Role: "Developer", Github: "soralis0912", Twitter: "soralis_0912", Telegram: "soralis_0912", Website: "soralis.org"},
	{Name: "neroices", Role: "Developer", Github: "neroices", Twitter: "letsmakeices", Website: "slce.moe"},
	{Name: "MONE-FIERA", Role: "Developer", Github: "monefiera", Twitter: "Forsaken_Love02"},
	{Name: "Yumagi", Role: "Developer", Github: "ymag-h", Twitter: "ymag_h"},
	{Name: "satokun2668", Role: "Designer", Github: "numaaqours", Twitter: "numa_aqours"},
	{Name: "Garry050", Role: "Advisor", Github: "garry050"},
	{Name: "Ruron", Role: "Developer", Github: "RuronKun3141", Twitter: "RuronKun_PC"},
}
