package translations

import "demolocales/internal/domain/entities"

var ruDemo = entities.Demo{
	Call:             "Входящий звонок",
	RiskyFeedback:    "Так часто начинаются реальные случаи мошенничества",
	CautiousFeedback: "Вы выбрали осторожную стратегию",
	NextScenario:     "Следующий сценарий",
	TryReal:          "Реальные тренировки",
	Hint:             "Сценарий основан на реальных схемах мошенничества в РК.\nТексты адаптированы.",
	Scenario1: entities.Scenario{
		Contact:  "Неизвестный номер",
		Message:  "Мам, привет. Я телефон потерял, это номер друга.\nСкинь срочно 15 000 ₸ на Каспи, очень надо, потом объясню.\nНомер: +7 705 XXX XX XX",
		Question: "Что сделаете?",
		Choice1:  "Сразу переведу — вдруг беда случилась",
		Choice2:  "Попрошу записать голосовое сообщение",
		Choice3:  "Позвоню на его старый номер",
	},
	Scenario2: entities.Scenario{
		Contact:  "Служба безопасности",
		Message:  "Уважаемый клиент!\nЗафиксирована попытка перевода на сумму 150 000₸.\nЕсли это не Вы, срочно сообщите код из SMS для отмены операции.",
		Question: "Ваши действия?",
		Choice1:  "Назову код — нужно спасать деньги",
		Choice2:  "Сброшу и проверю в приложении банка",
		Choice3:  "Перезвоню на официальный номер банка",
	},
	Scenario3: entities.Scenario{
		Contact:  "1414 (Egov)",
		Message:  "Вам назначена социальная выплата 50 000₸.\nДля получения перейдите по ссылке: egov-portal-kz.com/payment\nСрок действия ссылки 24 часа.",
		Question: "Как поступите?",
		Choice1:  "Перейду и введу данные карты",
		Choice2:  "Зайду на официальный сайт egov.kz",
		Choice3:  "Позвоню в ЦОН (1414)",
	},
	Scenario4: entities.Scenario{
		Contact:  "HR Менеджер",
		Message:  "Здравствуйте! Ищем сотрудников на удаленку.\nЗадача: ставить лайки на товары.\nОплата: от 25 000₸ в день.\nИнтересно?",
		Question: "Что ответите?",
		Choice1:  "Да, интересно! (Легкие деньги)",
		Choice2:  "Спрошу название компании и договор",
		Choice3:  "Заблокирую контакт",
	},
	Scenario5: entities.Scenario{
		Contact:  "KazPost Доставка",
		Message:  "Ваша посылка прибыла на склад, но адрес указан неверно.\nДля доставки обновите адрес и оплатите пошлину 450₸ по ссылке:\nkazpost-delivery-track.com",
		Question: "Ваше решение?",
		Choice1:  "Перейду и оплачу, сумма маленькая",
		Choice2:  "Проверю трек-номер на post.kz",
		Choice3:  "Позвоню на горячую линию почты",
	},
}
