package translations

import "demolocales/internal/domain/entities"

var kkDemo = entities.Demo{
	Call:             "Кіріс қоңырау",
	RiskyFeedback:    "Алаяқтар дәл осылай эмоцияға әсер етеді",
	CautiousFeedback: "Тамаша шешім! Әрқашан ақпаратты тексеріңіз",
	NextScenario:     "Келесі сценарий",
	TryReal:          "Шынайы сценарийлер",
	Hint:             "Сценарий ҚР-дағы нақты алаяқтық жағдайларына негізделген.\nМәтіндер бейімделген.",
	Scenario1: entities.Scenario{
		Contact:  "Белгісіз нөмір",
		Message:  "Мама, сәлем. Телефонымды жоғалтып алдым, досымның нөмірі.\nМаған шұғыл 15 000 ₸ Kaspi-ге жіберші, өте керек, кейін түсіндіремін.\nНөмір: +7 705 XXX XX XX",
		Question: "Не істейсіз?",
		Choice1:  "Бірден аударамын — жағдай қиын болуы мүмкін",
		Choice2:  "Дауыстық хабарлама жазуын сұраймын",
		Choice3:  "Ескі нөміріне қоңырау шаламын",
	},
	Scenario2: entities.Scenario{
		Contact:  "Қауіпсіздік қызметі",
		Message:  "Құрметті клиент!\nСіздің шотыңыздан 150 000₸ аудару әрекеті тіркелді.\nЕгер бұл сіз болмасаңыз, операцияны тоқтату үшін SMS кодын айтыңыз.",
		Question: "Сіздің әрекетіңіз?",
		Choice1:  "Кодты айтамын — ақшаны сақтау керек",
		Choice2:  "Тұтқаны қойып, банк қосымшасын тексеремін",
		Choice3:  "Ресми банк нөміріне хабарласамын",
	},
	Scenario3: entities.Scenario{
		Contact:  "1414 (Egov)",
		Message:  "Сізге 50 000₸ әлеуметтік төлем тағайындалды.\nАлу үшін сілтемеге өтіңіз: egov-portal-kz.com/payment\nСілтеме 24 сағат жарамды.",
		Question: "Қалай жасайсыз?",
		Choice1:  "Сілтемемен өтіп, карта мәліметтерін енгіземін",
		Choice2:  "Ресми egov.kz сайтынан тексеремін",
		Choice3:  "ХҚКО-ға (1414) хабарласамын",
	},
	Scenario4: entities.Scenario{
		Contact:  "HR Менеджер",
		Message:  "Сәлеметсіз бе! Қашықтан жұмыс ұсынамыз.\nТапсырма: тауарларға лайк басу.\nТөлем: күніне 25 000₸ бастап.\nҚызық па?",
		Question: "Не жауап бересіз?",
		Choice1:  "Иә, қызық! (Оңай ақша)",
		Choice2:  "Компания атауын және келісімшартты сұраймын",
		Choice3:  "Бұғаттаймын",
	},
	Scenario5: entities.Scenario{
		Contact:  "KazPost Жеткізу",
		Message:  "Сәлемдемеңіз келді, бірақ мекенжай қате көрсетілген.\nЖеткізу үшін мекенжайды жаңартып, 450₸ төлем жасаңыз:\nkazpost-delivery-track.com",
		Question: "Не істейсіз?",
		Choice1:  "Төлей саламын, сома аз ғой",
		Choice2:  "post.kz сайтынан трек-нөмірді тексеремін",
		Choice3:  "Поштаның байланыс орталығына хабарласамын",
	},
}
