package consts

const (
	TokenBlacklistKey = "token:blacklist:"
	ReportVersionKey  = "report:version:"
	ReportCampaignKey = "report:campaign:"
	PostIndexDirtyKey = "post:index:dirty"
)
