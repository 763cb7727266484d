package main

// Sample is an incoming email used as benchmark input.
type Sample struct {
	Name string
	Text string
}

// Samples are realistic inbound emails at increasing lengths, sent to both
// the reply and summarize endpoints in timing mode.
var Samples = []Sample{
	{
		Name: "tiny",
		Text: "Can we move tomorrow's sync to 3pm? Something came up in the morning.",
	},
	{
		Name: "short",
		Text: `Hi,

Quick heads-up that the staging database will be down on Saturday from 08:00 to 10:00 UTC for the storage upgrade. Nothing changes for production. If you have migrations queued for the weekend please hold them until Monday.

Thanks,
Priya`,
	},
	{
		Name: "medium",
		Text: `Hello,

Thank you for sending over the proposal for the new onboarding flow. The team went through it on Tuesday and we like the direction overall, especially the idea of splitting the account setup into three short steps instead of one long form.

We do have two concerns. First, the identity check you proposed relies on a third-party vendor we have not worked with before, and procurement will need at least four weeks to review them. Second, the timeline assumes design sign-off by the end of this month, which looks tight given that our lead designer is out for ten days starting next week.

Could you send a revised plan that either uses our existing verification provider or pushes the vendor integration into a second phase? It would also help to see which tasks can start before design sign-off.

Looking forward to your update.

Best regards,
Daniel`,
	},
	{
		Name: "long",
		Text: `Subject: Vendor contract renewal and budget for next year

Hi all,

As you know, our contract with the current cloud monitoring vendor expires at the end of next quarter, and finance has asked every team to submit its tooling budget for next year by the 20th. I want to summarize where we stand so we can agree on a recommendation at Thursday's meeting.

Usage: over the last twelve months we ingested on average 1.8 TB of logs and 40 million metric series per month. That is roughly 35% more than what the current contract covers, and we paid overage fees in seven of the twelve months. The total overage was a little over 28,000 dollars.

Options: the vendor has offered a renewal with a higher base tier that would cover our current volume for an 18% increase over this year's base price. Alternatively, we could move metrics to the self-hosted Prometheus setup the platform team already runs and keep only logs with the vendor, which cuts the quote almost in half but adds an estimated two weeks of migration work and some ongoing maintenance.

There is also the option of a full migration to another vendor. Two of them sent quotes that are 20 to 25% cheaper, but both would require rewriting our alert rules and dashboards, and neither supports the audit log retention period that compliance requires without an add-on.

My recommendation is the hybrid approach: self-host metrics, renew logs only, and revisit a full vendor change next year once the retention requirement is clarified. I have put the detailed numbers in the spreadsheet linked in the team channel.

Please review before Thursday and come with questions or alternatives.

Thanks,
Marta`,
	},
}

// ToneSamples pair an email with a tone for --quality mode, which prints the
// drafted reply for manual review.
var ToneSamples = []struct {
	Sample
	Tone string
}{
	{Sample{"apology", "I ordered the blue jacket two weeks ago and it still has not shipped. Order 48213. What is going on?"}, "apologetic"},
	{Sample{"invite", "We are hosting a small team dinner on Friday at 7pm to celebrate the launch. Would you like to join us?"}, "friendly"},
	{Sample{"decline", "Would you be available to speak at our conference in March? We cover travel and accommodation."}, "formal"},
	{Sample{"followup", "Just checking whether you had a chance to look at the invoice I sent last week."}, "concise"},
}
