package holiday

// FixedHolidays are month-day festivals used when the fetched map has no entry
var FixedHolidays = map[string]string{
	"01-01": "元旦",
	"02-14": "情人节",
	"03-08": "妇女节",
	"04-01": "愚人节",
	"05-01": "劳动节",
	"05-04": "青年节",
	"06-01": "儿童节",
	"07-01": "建党节",
	"08-01": "建军节",
	"09-10": "教师节",
	"10-01": "国庆节",
	"12-25": "圣诞节",
}

// Annotation returns the holiday label for an ISO date, or "" when there is none.
// A fetched entry always wins over the fixed table; makeup workdays are
// suffixed with （调休）.
func Annotation(date string, m Map) string {
	if r, ok := m[date]; ok {
		if r.IsTransferWorkday() {
			return r.DisplayName() + "（调休）"
		}
		return r.DisplayName()
	}
	if len(date) < len("2006-01-02") {
		return ""
	}
	return FixedHolidays[date[5:]]
}
