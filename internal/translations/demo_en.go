package translations

import "demolocales/internal/domain/entities"

var enDemo = entities.Demo{
	Call:             "Incoming Call",
	RiskyFeedback:    "This is exactly how scammers exploit emotions",
	CautiousFeedback: "Great choice! Always verify the source",
	NextScenario:     "Next scenario",
	TryReal:          "Try Real Scenarios",
	Hint:             "Scenarios based on real fraud cases in Kazakhstan.\nTexts adapted for education.",
	Scenario1: entities.Scenario{
		Contact:  "Unknown Number",
		Message:  "Mom, hi. I lost my phone, using a friend's number.\nPlease send 15,000 ₸ to Kaspi ASAP, it's urgent, I'll explain later.\nNumber: +7 705 XXX XX XX",
		Question: "What do you do?",
		Choice1:  "Transfer immediately — it might be an emergency",
		Choice2:  "Ask for a voice message",
		Choice3:  "Call his old number",
	},
	Scenario2: entities.Scenario{
		Contact:  "Security Service",
		Message:  "Dear client!\nAn attempt to transfer 150,000₸ was detected.\nIf this wasn't you, strictly provide the SMS code to cancel the operation.",
		Question: "Your action?",
		Choice1:  "Give the code — need to save the money",
		Choice2:  "Hang up and check the banking app",
		Choice3:  "Call the official bank number",
	},
	Scenario3: entities.Scenario{
		Contact:  "1414 (Egov)",
		Message:  "You have been approved for a social payment of 50,000₸.\nTo receive it, follow the link: egov-portal-kz.com/payment\nLink valid for 24 hours.",
		Question: "How do you react?",
		Choice1:  "Click and enter card details",
		Choice2:  "Check on the official egov.kz website",
		Choice3:  "Call the service center (1414)",
	},
	Scenario4: entities.Scenario{
		Contact:  "HR Manager",
		Message:  "Hello! Looking for remote employees.\nTask: like products online.\nPay: from 25,000₸ per day.\nInterested?",
		Question: "Your reply?",
		Choice1:  "Yes, interested! (Easy money)",
		Choice2:  "Ask for company name and contract",
		Choice3:  "Block the contact",
	},
	Scenario5: entities.Scenario{
		Contact:  "KazPost Delivery",
		Message:  "Your package arrived, but the address is incorrect.\nTo deliver, update address and pay 450₸ fee via link:\nkazpost-delivery-track.com",
		Question: "What will you do?",
		Choice1:  "Pay it, the amount is small",
		Choice2:  "Check tracking number on post.kz",
		Choice3:  "Call the post office hotline",
	},
}
