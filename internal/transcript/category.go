package transcript

// Category is an advisory business-topic tag attached to an outgoing
// message. The client never validates or routes on it.
type Category string

// Category constants.
const (
	CategoryNone      Category = ""
	CategoryFinancial Category = "financial"
	CategoryLegal     Category = "legal"
	CategoryHR        Category = "hr"
	CategoryMarketing Category = "marketing"
	CategoryGrowth    Category = "growth"
	CategoryReports   Category = "reports"
)

// QuickPrompt is a category block shown on an empty transcript: picking one
// pre-fills the input with a canned prompt and tags the send.
type QuickPrompt struct {
	Category    Category
	Title       string
	Description string
	Prompt      string
}

// QuickPrompts returns the fixed set of category blocks.
func QuickPrompts() []QuickPrompt {
	return []QuickPrompt{
		{
			Category:    CategoryFinancial,
			Title:       "Финансовый анализ",
			Description: "Анализ прибыли, выручки и расходов",
			Prompt:      "Проанализируй финансовые показатели моего бизнеса. Какая прибыль, выручка и расходы?",
		},
		{
			Category:    CategoryLegal,
			Title:       "Юридические вопросы",
			Description: "Помощь с правовыми аспектами",
			Prompt:      "Помоги с юридическими вопросами для моего бизнеса. Что нужно знать?",
		},
		{
			Category:    CategoryHR,
			Title:       "Управление персоналом",
			Description: "Вопросы по сотрудникам и кадрам",
			Prompt:      "Проанализируй информацию о персонале. Какие рекомендации по управлению сотрудниками?",
		},
		{
			Category:    CategoryMarketing,
			Title:       "Маркетинг и продвижение",
			Description: "Стратегии роста и привлечения клиентов",
			Prompt:      "Дай рекомендации по маркетингу и продвижению моего бизнеса. Как увеличить продажи?",
		},
		{
			Category:    CategoryGrowth,
			Title:       "Рост бизнеса",
			Description: "Стратегии развития и масштабирования",
			Prompt:      "Как мой бизнес может расти? Какие стратегии развития ты можешь предложить?",
		},
		{
			Category:    CategoryReports,
			Title:       "Анализ отчетов",
			Description: "Детальный анализ загруженных данных",
			Prompt:      "Проанализируй все загруженные отчеты и файлы. Какие выводы можно сделать?",
		},
	}
}

// TitleFor returns the display title for a category, or the raw tag when it
// is not one of the known blocks.
func TitleFor(c Category) string {
	for _, qp := range QuickPrompts() {
		if qp.Category == c {
			return qp.Title
		}
	}
	return string(c)
}
