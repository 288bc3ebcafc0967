package templates

const layoutHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
        }
        .header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 30px;
            text-align: center;
            border-radius: 10px 10px 0 0;
        }
        .content {
            background: #f8f9fa;
            padding: 30px;
            border: 1px solid #e9ecef;
        }
        .footer {
            background: #6c757d;
            color: white;
            padding: 20px;
            text-align: center;
            border-radius: 0 0 10px 10px;
            font-size: 14px;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>{{.Title}}</h1>
    </div>
    <div class="content">
        {{.Content}}
    </div>
    <div class="footer">
        <p>Assessment Platform &copy; {{.Year}}</p>
    </div>
</body>
</html>
`

const invitationPlain = `Dear Candidate,

You have been invited to take the assessment: {{.Title}}

Assessment Details:
• Description: {{.Description}}
• Time Limit: {{.TimeLimit}} minutes
• Job Role: {{.JobRole}}
• Difficulty: {{.Difficulty}}

Please log in to your account to complete the assessment at your earliest convenience.

Important Notes:
- Make sure you have a stable internet connection
- Complete the assessment in one session
- Contact support if you experience any technical issues

Best regards,
Assessment Team
`

const invitationHTML = `<h2>Assessment Invitation</h2>
<p>You have been invited to take the following assessment:</p>
<h3>{{.Title}}</h3>
<div style="background: #e9ecef; padding: 20px; border-radius: 5px; margin: 20px 0;">
    <p><strong>Description:</strong> {{.Description}}</p>
    <p><strong>Time Limit:</strong> {{.TimeLimit}} minutes</p>
    <p><strong>Job Role:</strong> {{.JobRole}}</p>
    <p><strong>Difficulty:</strong> {{.Difficulty}}</p>
</div>
<p>Please log in to your account to complete the assessment.</p>
<p><strong>Important:</strong> Ensure you have a stable internet connection and complete the assessment in one session.</p>`

const completionPlain = `Dear Candidate,

Thank you for completing the assessment: {{.Title}}

Your submission has been received and will be reviewed by our team. You will be notified once the evaluation is complete.

Assessment Summary:
• Completed on: {{.CompletedOn}}
• Duration: {{.Duration}}

Next Steps:
Our team will review your responses and provide feedback within 3-5 business days.

Thank you for your participation.

Best regards,
Assessment Team
`

const completionHTML = `<h2>Assessment Completed Successfully</h2>
<p>Thank you for completing: <strong>{{.Title}}</strong></p>
<div style="background: #d4edda; padding: 20px; border-radius: 5px; margin: 20px 0; border-left: 4px solid #28a745;">
    <p><strong>Completed on:</strong> {{.CompletedOn}}</p>
    <p><strong>Duration:</strong> {{.Duration}}</p>
</div>
<p>Your submission has been received and will be reviewed by our team.</p>
<p><strong>Next Steps:</strong> You will receive feedback within 3-5 business days.</p>`

const passedPlain = `Dear {{.Name}},

Congratulations! You have successfully passed the assessment: {{.Title}}

Your Results:
• Score: {{.Score}}%
• Time Spent: {{.TimeSpent}} minutes
• Status: PASSED ✓

We are impressed with your performance and will be in touch regarding the next steps in the process.

Keep up the excellent work!

Best regards,
Assessment Team
`

const passedHTML = `<h2>Congratulations! 🎉</h2>
<p>Dear {{.Name}},</p>
<p>You have successfully <strong style="color: #28a745;">PASSED</strong> the assessment: <strong>{{.Title}}</strong></p>
<div style="background: #d4edda; padding: 20px; border-radius: 5px; margin: 20px 0; border-left: 4px solid #28a745;">
    <p><strong>Score:</strong> {{.Score}}%</p>
    <p><strong>Time Spent:</strong> {{.TimeSpent}} minutes</p>
    <p><strong>Status:</strong> <span style="color: #28a745;">PASSED ✓</span></p>
</div>
<p>We are impressed with your performance and will be in touch regarding the next steps.</p>`

const failedPlain = `Dear {{.Name}},

Thank you for completing the assessment: {{.Title}}

Your Results:
• Score: {{.Score}}%
• Time Spent: {{.TimeSpent}} minutes
• Status: Not Passed

While you didn't meet the passing criteria this time, we appreciate your effort and encourage you to continue developing your skills.

We wish you the best in your future endeavors.

Best regards,
Assessment Team
`

const failedHTML = `<h2>Assessment Results</h2>
<p>Dear {{.Name}},</p>
<p>Thank you for completing the assessment: <strong>{{.Title}}</strong></p>
<div style="background: #f8d7da; padding: 20px; border-radius: 5px; margin: 20px 0; border-left: 4px solid #dc3545;">
    <p><strong>Score:</strong> {{.Score}}%</p>
    <p><strong>Time Spent:</strong> {{.TimeSpent}} minutes</p>
    <p><strong>Status:</strong> <span style="color: #dc3545;">Not Passed</span></p>
</div>
<p>While you didn't meet the passing criteria this time, we encourage you to continue developing your skills.</p>`
