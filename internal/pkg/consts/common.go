package consts

// ContextUserID gin.Context 与 context.Context 中当前用户 ID 的键
const ContextUserID = "user_id"

// ReportCSVContentType 导出文件的 Content-Type
const ReportCSVContentType = "text/csv; charset=utf-8"
